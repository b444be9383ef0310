// Package content loads the source tree of a magazine into a Book.
//
// The source tree is read through an fs.FS rooted at the content directory:
//
//	metadata.json               book id, title, creator, coverImage
//	foreword.md                 optional plain page
//	columns/<column>/*.md       articles with title/author/image front matter
//
// Columns keep directory listing order. Within a column, introduction
// articles (see IsIntroduction) come first and ties fall back to file name
// order. Every failure is reported as ErrLoad.
package content
