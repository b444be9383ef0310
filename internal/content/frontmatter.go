package content

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/myuanzhang/reader-epub/internal/yamlutil"
)

// FrontMatter holds the article fields read from the YAML header.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Image  string `yaml:"image"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yamlutil.UnmarshalLenient)

// ParseFrontMatter splits source into its front matter and markdown body.
// Text without a front matter block is returned whole as the body. A
// leading byte order mark is ignored and invalid UTF-8 becomes U+FFFD.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(cleanText(source)), &meta, yamlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
