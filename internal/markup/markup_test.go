package markup

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/myuanzhang/reader-epub/internal/assets"
	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/opf"
)

func newTestRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()

	r, err := NewRenderer(assets.NewEmbeddedLoader(), opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

// wellFormed decodes every token of doc, failing on malformed XML.
func wellFormed(t *testing.T, doc []byte) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(string(doc)))
	dec.Strict = true
	dec.Entity = xml.HTMLEntity
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed XML: %v\n%s", err, doc)
		}
	}
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestMarkdown - Fragment conversion and normalization
// ---------------------------------------------------------------------------

func TestMarkdown(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "line breaks become hard breaks",
			input: "第一行\n第二行",
			want:  []string{"<p>第一行<br/>\n第二行</p>"},
		},
		{
			name:  "CRLF normalized",
			input: "a\r\nb",
			want:  []string{"a<br/>\nb"},
		},
		{
			name:  "bare URL auto-links",
			input: "see https://example.com now",
			want:  []string{`<a href="https://example.com">https://example.com</a>`},
		},
		{
			name:  "inline HTML passes through",
			input: `hello <span class="hl">world</span>`,
			want:  []string{`<span class="hl">world</span>`},
		},
		{
			name:  "void inline HTML closed",
			input: "a<br>b",
			want:  []string{"a<br/>b"},
		},
		{
			name:  "unclosed block HTML closed",
			input: "<div class=\"note\">open",
			want:  []string{`<div class="note">`, "</div>"},
		},
		{
			name:  "fenced code highlighted with classes",
			input: "```go\nfunc main() {}\n```",
			want:  []string{`class="chroma"`, "main"},
		},
		{
			name:  "GFM table",
			input: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:  []string{"<table>", "<td>1</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Markdown(tt.input)
			if err != nil {
				t.Fatalf("Markdown() error = %v", err)
			}
			assertContains(t, got, tt.want...)
		})
	}
}

func TestMarkdown_Empty(t *testing.T) {
	t.Parallel()

	got, err := newTestRenderer(t).Markdown("  \n")
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if got != "" {
		t.Errorf("Markdown(blank) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestArticle / TestPage / TestCover - Content documents
// ---------------------------------------------------------------------------

func TestArticle(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	a := content.Article{
		ID:     "tech-welcome-aboard",
		Title:  "Welcome & <Aboard>",
		Author: "张三",
		Image:  "images/2024/shared.png",
		Body:   "正文 *强调*",
	}

	doc, err := r.Article(a)
	if err != nil {
		t.Fatalf("Article() error = %v", err)
	}
	out := string(doc)

	assertContains(t, out,
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="zh-CN" lang="zh-CN">`,
		`<title>Welcome &amp; &lt;Aboard&gt;</title>`,
		`<link rel="stylesheet" type="text/css" href="../styles/style.css"/>`,
		`<h1 class="article-title">Welcome &amp; &lt;Aboard&gt;</h1><div class="article-author">张三</div>`,
		`<figure><img class="article-image" src="../images/shared.png" alt="Welcome &amp; &lt;Aboard&gt;"/></figure>`,
		"<em>强调</em>",
	)
	wellFormed(t, doc)
}

func TestArticle_OptionalParts(t *testing.T) {
	t.Parallel()

	doc, err := newTestRenderer(t).Article(content.Article{ID: "life-plainmd", Title: "plain", Body: "x"})
	if err != nil {
		t.Fatalf("Article() error = %v", err)
	}
	out := string(doc)
	if strings.Contains(out, "article-author") {
		t.Error("author line rendered without an author")
	}
	if strings.Contains(out, "<figure>") {
		t.Error("figure rendered without an image")
	}
	wellFormed(t, doc)
}

func TestPage(t *testing.T) {
	t.Parallel()

	doc, err := newTestRenderer(t).Page(content.Page{Title: "卷首语", File: "p-20b8cb234a9dbb4a.xhtml", Body: "欢迎阅读"})
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	assertContains(t, string(doc),
		"<title>卷首语</title>",
		`<h1 class="article-title">卷首语</h1>`,
		`href="../styles/style.css"`,
		"<p>欢迎阅读</p>",
	)
	wellFormed(t, doc)
}

func TestCover(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	t.Run("with cover image", func(t *testing.T) {
		doc, err := r.Cover(content.Metadata{Title: "周刊", CoverImage: "images/cover.jpg"})
		if err != nil {
			t.Fatalf("Cover() error = %v", err)
		}
		out := string(doc)
		assertContains(t, out,
			"<title>封面</title>",
			`href="styles/style.css"`,
			`<img class="article-image" src="images/cover.jpg" alt="周刊"/>`,
		)
		if strings.Contains(out, "../styles/style.css") {
			t.Error("cover must link the stylesheet from the OEBPS root")
		}
		wellFormed(t, doc)
	})

	t.Run("without cover image", func(t *testing.T) {
		doc, err := r.Cover(content.Metadata{Title: "周刊"})
		if err != nil {
			t.Fatalf("Cover() error = %v", err)
		}
		out := string(doc)
		assertContains(t, out, `<h1 class="article-title">周刊</h1>`)
		if strings.Contains(out, "<img") {
			t.Error("image rendered without a cover image")
		}
	})
}

// ---------------------------------------------------------------------------
// TestTOC / TestNav - Navigation documents
// ---------------------------------------------------------------------------

func TestTOC(t *testing.T) {
	t.Parallel()

	sections := []opf.TOCSection{
		{Title: "前言", Entries: []opf.Link{{Title: "卷首语", Href: "p-20b8cb234a9dbb4a.xhtml"}}},
		{Title: "技术", Entries: []opf.Link{{Title: "A & B", Href: "tech-ab.xhtml"}}},
		{Title: "空"},
	}

	doc, err := newTestRenderer(t).TOC(sections)
	if err != nil {
		t.Fatalf("TOC() error = %v", err)
	}
	out := string(doc)
	assertContains(t, out,
		"<title>目录</title>",
		`<div class="toc"><h1>目录</h1>`,
		`<div class="column-title">前言</div>`,
		`<li><a href="p-20b8cb234a9dbb4a.xhtml">卷首语</a></li>`,
		`<li><a href="tech-ab.xhtml">A &amp; B</a></li>`,
		`<div class="column-title">空</div><ul></ul>`,
	)
	if strings.Index(out, "前言") > strings.Index(out, "技术") {
		t.Error("page group must precede columns")
	}
	wellFormed(t, doc)
}

func TestNav(t *testing.T) {
	t.Parallel()

	entries := []opf.NavEntry{
		{Title: "卷首语", Href: "text/p-20b8cb234a9dbb4a.xhtml"},
		{Title: "技术", Href: "text/tech-intro.xhtml", Children: []opf.NavEntry{
			{Title: "Zeta", Href: "text/tech-zeta.xhtml"},
		}},
		{Title: "生活", Href: "text/life-notes.xhtml"},
	}

	doc, err := newTestRenderer(t).Nav("周刊", entries)
	if err != nil {
		t.Fatalf("Nav() error = %v", err)
	}
	out := string(doc)
	assertContains(t, out,
		`xmlns:epub="http://www.idpf.org/2007/ops"`,
		"<title>周刊</title>",
		`<nav epub:type="toc" id="toc">`,
		"<h1>目录</h1>",
		`<li><a href="text/p-20b8cb234a9dbb4a.xhtml">卷首语</a></li>`,
		`<li><a href="text/tech-intro.xhtml">技术</a><ol><li><a href="text/tech-zeta.xhtml">Zeta</a></li></ol></li>`,
		`<li><a href="text/life-notes.xhtml">生活</a></li>`,
	)
	if strings.Contains(out, "cover.xhtml") {
		t.Error("nav must not link the cover")
	}
	wellFormed(t, []byte(out))
}

// ---------------------------------------------------------------------------
// TestStylesheet - Magazine CSS plus highlight rules
// ---------------------------------------------------------------------------

func TestStylesheet(t *testing.T) {
	t.Parallel()

	css := newTestRenderer(t).Stylesheet()
	assertContains(t, css, ".article-title", ".toc .column-title", ".chroma")
}

func TestStylesheet_UnknownThemeFallsBack(t *testing.T) {
	t.Parallel()

	css, err := Stylesheet("body{}", "no-such-theme-xyz")
	if err != nil {
		t.Fatalf("Stylesheet() error = %v", err)
	}
	assertContains(t, css, "body{}", ".chroma")
}

// ---------------------------------------------------------------------------
// TestNewRenderer - Asset loading failures
// ---------------------------------------------------------------------------

func TestNewRenderer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"unknown style", []Option{WithStyle("missing-style")}, assets.ErrStyleNotFound},
		{"unknown template set", []Option{WithTemplateSet("missing-set")}, assets.ErrTemplateSetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRenderer(assets.NewEmbeddedLoader(), tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRenderer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type brokenLoader struct{}

func (brokenLoader) LoadStyle(string) (string, error) { return "", nil }

func (brokenLoader) LoadTemplateSet(name string) (*assets.TemplateSet, error) {
	return &assets.TemplateSet{Name: name, Document: "{{.Body", Article: "", Cover: "", TOC: "", Nav: ""}, nil
}

func TestNewRenderer_TemplateSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(brokenLoader{})
	if !errors.Is(err, ErrRender) {
		t.Errorf("NewRenderer() error = %v, want ErrRender", err)
	}
}
