// Package markup renders the content model into XHTML content documents.
//
// Markdown bodies go through goldmark (GFM with linkify, hard wraps,
// inline HTML) and are normalized into a well-formed XHTML fragment.
// Fragments are then wrapped with the text/template sources of an
// assets.TemplateSet. Values interpolated by templates must pass through
// the "xml" function; rendered fragments are inserted verbatim.
//
// Every content document declares the fixed zh-CN language and links the
// shared stylesheet. Documents under text/ use ../styles/style.css; the
// cover sits one level above them and uses styles/style.css.
package markup
