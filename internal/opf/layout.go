package opf

import (
	"strings"

	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/fileutil"
)

// Package directory layout, relative to the build root.
const (
	OEBPSDir   = "OEBPS"
	MetaInfDir = "META-INF"
	TextDir    = "text"
	ImagesDir  = "images"
	StylesDir  = "styles"
)

// Fixed file names and OEBPS-relative hrefs.
const (
	MimetypeFile  = "mimetype"
	ContainerFile = "container.xml"
	PackageFile   = "content.opf"
	StyleHref     = StylesDir + "/style.css"
	CoverHref     = "cover.xhtml"
	NavHref       = "nav.xhtml"
	TOCFile       = "magazine-toc.xhtml"
	TOCHref       = TextDir + "/" + TOCFile
)

// Mimetype is the exact content of the mimetype file. It carries no
// trailing newline.
const Mimetype = "application/epub+zip"

// Fixed manifest ids.
const (
	StyleID      = "style"
	CoverImageID = "cover-image"
	CoverID      = "cover"
	TOCID        = "magazine-toc"
	NavID        = "nav"
	BookIDAttr   = "book-id"
)

// IsReservedID reports whether id is taken by a generated manifest item or
// package element, so no page or article may use it.
func IsReservedID(id string) bool {
	switch id {
	case StyleID, CoverImageID, CoverID, TOCID, NavID, BookIDAttr:
		return true
	}
	return strings.HasPrefix(id, ImageIDPrefix)
}

// Media types of generated documents.
const (
	XHTMLMediaType = "application/xhtml+xml"
	CSSMediaType   = "text/css"
)

// Fixed human-facing strings.
const (
	Language       = "zh-CN"
	CoverTitle     = "封面"
	TOCTitle       = "目录"
	PageGroupTitle = "前言"
)

// ArticleFile returns the file name of an article document inside TextDir.
func ArticleFile(a content.Article) string {
	return a.ID + ".xhtml"
}

// TextHref returns the OEBPS-relative href of a document in TextDir.
func TextHref(file string) string {
	return TextDir + "/" + file
}

// ImageHref returns the OEBPS-relative href of a copied image.
func ImageHref(name string) string {
	return ImagesDir + "/" + fileutil.BaseName(name)
}
