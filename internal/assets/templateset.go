package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// TemplateSet holds the XHTML templates for one rendering of a book.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Document string // Page wrapper shared by every content document
	Article  string // Article body: title, author, image, rendered markdown
	Cover    string // Cover page body
	TOC      string // In-book table of contents body
	Nav      string // Navigation document, a full XHTML file
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "magazine"

// templateFiles lists the files of a template set in load order.
var templateFiles = []string{"document.xhtml", "article.xhtml", "cover.xhtml", "toc.xhtml", "nav.xhtml"}

// readTemplateSet reads every file of the named set through read. A set
// with no file present is reported as not found; a partial set as incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	contents := make(map[string]string, len(templateFiles))
	var missing []string
	for _, file := range templateFiles {
		data, err := read(file)
		if errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, file)
			continue
		}
		if errors.Is(err, ErrPathTraversal) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, file, err)
		}
		contents[file] = string(data)
	}

	if len(missing) == len(templateFiles) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, missing[0])
	}

	return &TemplateSet{
		Name:     name,
		Document: contents["document.xhtml"],
		Article:  contents["article.xhtml"],
		Cover:    contents["cover.xhtml"],
		TOC:      contents["toc.xhtml"],
		Nav:      contents["nav.xhtml"],
	}, nil
}
