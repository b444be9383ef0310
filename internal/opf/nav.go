package opf

import (
	"fmt"

	"github.com/myuanzhang/reader-epub/internal/content"
)

// NavEntry is one link of the navigation document. Hrefs are relative to
// OEBPS, where nav.xhtml lives.
type NavEntry struct {
	Title    string
	Href     string
	Children []NavEntry
}

// Link is one entry of the in-book table of contents. Hrefs are relative
// to the text directory, where the table of contents page lives.
type Link struct {
	Title string
	Href  string
}

// TOCSection is one group of the in-book table of contents.
type TOCSection struct {
	Title   string
	Entries []Link
}

// BuildNav returns the navigation tree: pages first, then one entry per
// non-empty column linking to its lead article with the remaining
// articles nested below it. The cover is not listed.
func BuildNav(book *content.Book) []NavEntry {
	var entries []NavEntry
	for _, p := range book.Pages {
		entries = append(entries, NavEntry{Title: p.Title, Href: TextHref(p.File)})
	}
	for _, c := range book.Columns {
		lead, rest, ok := c.Lead()
		if !ok {
			continue
		}
		entry := NavEntry{Title: c.Name, Href: TextHref(ArticleFile(lead))}
		for _, a := range rest {
			entry.Children = append(entry.Children, NavEntry{Title: a.Title, Href: TextHref(ArticleFile(a))})
		}
		entries = append(entries, entry)
	}
	return entries
}

// BuildTOC returns the sections of the table of contents page: a page
// group when pages exist, then every column with its articles in column
// order. Empty columns keep an empty section.
func BuildTOC(book *content.Book) []TOCSection {
	var sections []TOCSection
	if len(book.Pages) > 0 {
		group := TOCSection{Title: PageGroupTitle}
		for _, p := range book.Pages {
			group.Entries = append(group.Entries, Link{Title: p.Title, Href: p.File})
		}
		sections = append(sections, group)
	}
	for _, c := range book.Columns {
		section := TOCSection{Title: c.Name}
		for _, a := range c.Articles {
			section.Entries = append(section.Entries, Link{Title: a.Title, Href: ArticleFile(a)})
		}
		sections = append(sections, section)
	}
	return sections
}

// CheckNav reports the first navigation or table of contents link whose
// target is not a manifest item.
func CheckNav(m *Manifest, nav []NavEntry, toc []TOCSection) error {
	var walk func([]NavEntry) error
	walk = func(entries []NavEntry) error {
		for _, e := range entries {
			if !m.HasHref(e.Href) {
				return fmt.Errorf("%w: nav link %q", ErrUnknownID, e.Href)
			}
			if err := walk(e.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(nav); err != nil {
		return err
	}
	for _, s := range toc {
		for _, l := range s.Entries {
			if href := TextHref(l.Href); !m.HasHref(href) {
				return fmt.Errorf("%w: table of contents link %q", ErrUnknownID, href)
			}
		}
	}
	return nil
}
