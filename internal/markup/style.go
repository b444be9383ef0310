package markup

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Stylesheet appends the highlight rules of the chroma theme to css.
func Stylesheet(css, codeTheme string) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(css, "\n"))
	b.WriteString("\n")

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, styles.Get(codeTheme)); err != nil {
		return "", fmt.Errorf("%w: code theme %q: %v", ErrRender, codeTheme, err)
	}
	return b.String(), nil
}
