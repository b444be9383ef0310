package markup

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/yuin/goldmark"

	"github.com/myuanzhang/reader-epub/internal/assets"
	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/fileutil"
	"github.com/myuanzhang/reader-epub/internal/opf"
)

// DefaultCodeTheme is the chroma style used for fenced code blocks.
const DefaultCodeTheme = "github"

// Stylesheet hrefs as seen from each document tier.
const (
	TextStylesheet = "../" + opf.StyleHref
	RootStylesheet = opf.StyleHref
)

// Renderer turns content into XHTML documents. It is built once per build
// and is not safe for concurrent use.
type Renderer struct {
	md       goldmark.Markdown
	document *template.Template
	article  *template.Template
	cover    *template.Template
	toc      *template.Template
	nav      *template.Template
	style    string
}

// Option configures a Renderer.
type Option func(*settings)

type settings struct {
	codeTheme   string
	styleName   string
	templateSet string
}

// WithCodeTheme selects the chroma style for code blocks. Unknown names
// fall back to chroma's default style.
func WithCodeTheme(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.codeTheme = name
		}
	}
}

// WithStyle selects the stylesheet loaded from the asset loader.
func WithStyle(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.styleName = name
		}
	}
}

// WithTemplateSet selects the template set loaded from the asset loader.
func WithTemplateSet(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.templateSet = name
		}
	}
}

// NewRenderer loads the stylesheet and templates from loader and parses them.
func NewRenderer(loader assets.AssetLoader, opts ...Option) (*Renderer, error) {
	s := settings{
		codeTheme:   DefaultCodeTheme,
		styleName:   assets.DefaultStyleName,
		templateSet: assets.DefaultTemplateSetName,
	}
	for _, opt := range opts {
		opt(&s)
	}

	css, err := loader.LoadStyle(s.styleName)
	if err != nil {
		return nil, err
	}
	style, err := Stylesheet(css, s.codeTheme)
	if err != nil {
		return nil, err
	}

	ts, err := loader.LoadTemplateSet(s.templateSet)
	if err != nil {
		return nil, err
	}

	r := &Renderer{md: newMarkdown(s.codeTheme), style: style}
	parsed := []struct {
		dst  **template.Template
		name string
		src  string
	}{
		{&r.document, "document", ts.Document},
		{&r.article, "article", ts.Article},
		{&r.cover, "cover", ts.Cover},
		{&r.toc, "toc", ts.TOC},
		{&r.nav, "nav", ts.Nav},
	}
	for _, p := range parsed {
		tmpl, err := parseTemplate(p.name, p.src)
		if err != nil {
			return nil, err
		}
		*p.dst = tmpl
	}
	return r, nil
}

var templateFuncs = template.FuncMap{
	"xml": template.HTMLEscapeString,
}

func parseTemplate(name, src string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s template: %v", ErrRender, name, err)
	}
	return tmpl, nil
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s template: %v", ErrRender, tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// Stylesheet returns the content of styles/style.css.
func (r *Renderer) Stylesheet() string {
	return r.style
}

type documentData struct {
	Lang       string
	Title      string
	Stylesheet string
	Body       string
}

// Wrap places an XHTML body fragment into a complete document titled
// title and linking stylesheet.
func (r *Renderer) Wrap(title, stylesheet, body string) ([]byte, error) {
	return execute(r.document, documentData{
		Lang:       opf.Language,
		Title:      title,
		Stylesheet: stylesheet,
		Body:       body,
	})
}

type articleData struct {
	Title  string
	Author string
	Image  string
	Body   string
}

// Article renders an article document for the text directory: title
// heading, optional author line, optional image figure, then the body.
func (r *Renderer) Article(a content.Article) ([]byte, error) {
	data := articleData{Title: a.Title, Author: a.Author}
	if a.Image != "" {
		data.Image = "../" + opf.ImageHref(fileutil.BaseName(a.Image))
	}
	return r.bodyDocument(a.Title, a.Body, data)
}

// Page renders a standalone page such as the foreword.
func (r *Renderer) Page(p content.Page) ([]byte, error) {
	return r.bodyDocument(p.Title, p.Body, articleData{Title: p.Title})
}

func (r *Renderer) bodyDocument(title, markdown string, data articleData) ([]byte, error) {
	fragment, err := r.Markdown(markdown)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", title, err)
	}
	data.Body = fragment
	body, err := execute(r.article, data)
	if err != nil {
		return nil, err
	}
	return r.Wrap(title, TextStylesheet, string(body))
}

type coverData struct {
	Title string
	Image string
}

// Cover renders cover.xhtml: the cover image when declared, otherwise
// the book title.
func (r *Renderer) Cover(meta content.Metadata) ([]byte, error) {
	data := coverData{Title: meta.Title}
	if meta.CoverImage != "" {
		data.Image = opf.ImageHref(meta.CoverImage)
	}
	body, err := execute(r.cover, data)
	if err != nil {
		return nil, err
	}
	return r.Wrap(opf.CoverTitle, RootStylesheet, string(body))
}

type tocData struct {
	Heading  string
	Sections []opf.TOCSection
}

// TOC renders the table of contents page for the text directory.
func (r *Renderer) TOC(sections []opf.TOCSection) ([]byte, error) {
	body, err := execute(r.toc, tocData{Heading: opf.TOCTitle, Sections: sections})
	if err != nil {
		return nil, err
	}
	return r.Wrap(opf.TOCTitle, TextStylesheet, string(body))
}

type navData struct {
	Lang    string
	Title   string
	Heading string
	Entries []opf.NavEntry
}

// Nav renders nav.xhtml titled with the book title.
func (r *Renderer) Nav(title string, entries []opf.NavEntry) ([]byte, error) {
	return execute(r.nav, navData{
		Lang:    opf.Language,
		Title:   title,
		Heading: opf.TOCTitle,
		Entries: entries,
	})
}
