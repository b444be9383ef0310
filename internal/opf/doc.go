// Package opf derives the structural documents of an EPUB 3 package from
// a loaded content.Book: the manifest and spine written to content.opf,
// the navigation tree behind nav.xhtml, the sections of the in-book table
// of contents and META-INF/container.xml.
//
// Every href in this package is relative to the OEBPS directory unless
// noted otherwise. Rendering the XHTML documents themselves is left to
// the markup package.
package opf
