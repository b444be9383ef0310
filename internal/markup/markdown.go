package markup

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrRender indicates markdown or template rendering failed.
var ErrRender = errors.New("render failed")

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// newMarkdown builds the goldmark converter. Highlighting emits CSS
// classes; the matching rules are appended to the stylesheet.
func newMarkdown(codeTheme string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, linkify, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeTheme),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Newlines inside a paragraph become <br/>
			html.WithXHTML(),     // Self-closing void elements
			html.WithUnsafe(),    // Inline HTML in articles is passed through
		),
	)
}

// Markdown converts a markdown body to a well-formed XHTML fragment.
func (r *Renderer) Markdown(source string) (string, error) {
	source = crlfOrCR.ReplaceAllString(source, "\n")

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: markdown: %v", ErrRender, err)
	}
	return normalizeFragment(buf.String())
}

// normalizeFragment reparses HTML as children of <body> and serializes it
// again, closing unclosed tags and void elements left by inline HTML.
func normalizeFragment(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	body := &nethtml.Node{Type: nethtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("%w: parsing fragment: %v", ErrRender, err)
	}

	var out strings.Builder
	for _, n := range nodes {
		if err := nethtml.Render(&out, n); err != nil {
			return "", fmt.Errorf("%w: serializing fragment: %v", ErrRender, err)
		}
	}
	return out.String(), nil
}
