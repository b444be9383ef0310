package opf

import (
	"errors"
	"fmt"

	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/fileutil"
	"github.com/myuanzhang/reader-epub/internal/media"
	"github.com/myuanzhang/reader-epub/internal/slug"
)

// ErrDuplicateID indicates two manifest items would share an id or href.
var ErrDuplicateID = errors.New("duplicate manifest id")

// ErrUnknownID indicates a spine or navigation reference outside the manifest.
var ErrUnknownID = errors.New("unknown manifest reference")

// ImageIDPrefix prefixes the manifest id of every article image.
const ImageIDPrefix = "img-"

// Item is one manifest entry.
type Item struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
}

// Manifest is an ordered list of items with unique ids and hrefs.
type Manifest struct {
	items []Item
	ids   map[string]bool
	hrefs map[string]bool
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{ids: make(map[string]bool), hrefs: make(map[string]bool)}
}

// Add appends item. It fails if the id or href is already listed.
func (m *Manifest) Add(item Item) error {
	if m.ids[item.ID] {
		return fmt.Errorf("%w: %q", ErrDuplicateID, item.ID)
	}
	if m.hrefs[item.Href] {
		return fmt.Errorf("%w: href %q already listed", ErrDuplicateID, item.Href)
	}
	m.ids[item.ID] = true
	m.hrefs[item.Href] = true
	m.items = append(m.items, item)
	return nil
}

// Has reports whether id is listed.
func (m *Manifest) Has(id string) bool {
	return m.ids[id]
}

// HasHref reports whether an item with the OEBPS-relative href is listed.
func (m *Manifest) HasHref(href string) bool {
	return m.hrefs[href]
}

// Items returns a copy of the items in insertion order.
func (m *Manifest) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Len returns the number of items.
func (m *Manifest) Len() int {
	return len(m.items)
}

// PageID returns the manifest id of a standalone page.
func PageID(p content.Page) string {
	return slug.Make(fileutil.Stem(p.File))
}

// BuildManifest lists every file of the package: stylesheet, cover image,
// cover, table of contents, pages, each article followed by its image,
// then the navigation document. images is the output of media.Collect.
func BuildManifest(book *content.Book, images []media.Image) (*Manifest, error) {
	m := NewManifest()
	byName := make(map[string]media.Image, len(images))
	for _, img := range images {
		byName[img.Name] = img
	}
	listed := make(map[string]bool)

	add := func(items ...Item) error {
		for _, item := range items {
			if err := m.Add(item); err != nil {
				return err
			}
		}
		return nil
	}

	if err := add(Item{ID: StyleID, Href: StyleHref, MediaType: CSSMediaType}); err != nil {
		return nil, err
	}
	if cover := book.Metadata.CoverImage; cover != "" {
		name := fileutil.BaseName(cover)
		if err := add(Item{ID: CoverImageID, Href: ImageHref(name), MediaType: media.MediaType(name), Properties: "cover-image"}); err != nil {
			return nil, err
		}
		listed[name] = true
	}
	if err := add(
		Item{ID: CoverID, Href: CoverHref, MediaType: XHTMLMediaType},
		Item{ID: TOCID, Href: TOCHref, MediaType: XHTMLMediaType},
	); err != nil {
		return nil, err
	}
	for _, p := range book.Pages {
		if err := add(Item{ID: PageID(p), Href: TextHref(p.File), MediaType: XHTMLMediaType}); err != nil {
			return nil, err
		}
	}

	for _, a := range book.Articles() {
		if err := add(Item{ID: a.ID, Href: TextHref(ArticleFile(a)), MediaType: XHTMLMediaType}); err != nil {
			return nil, err
		}
		if a.Image == "" {
			continue
		}
		name := fileutil.BaseName(a.Image)
		if listed[name] {
			continue
		}
		img, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s: image not collected", media.ErrAsset, a.Image)
		}
		id, err := imageID(m, img.Name)
		if err != nil {
			return nil, err
		}
		if err := add(Item{ID: id, Href: ImageHref(img.Name), MediaType: img.MediaType}); err != nil {
			return nil, err
		}
		listed[name] = true
	}

	if err := add(Item{ID: NavID, Href: NavHref, MediaType: XHTMLMediaType, Properties: "nav"}); err != nil {
		return nil, err
	}
	return m, nil
}

// imageID derives "img-" + slug of the stem. Two names sharing a stem
// (a.png, a.jpg) fall back to the slug of the whole base name.
func imageID(m *Manifest, name string) (string, error) {
	id := ImageIDPrefix + slug.Make(fileutil.Stem(name))
	if !m.Has(id) {
		return id, nil
	}
	id = ImageIDPrefix + slug.Make(name)
	if !m.Has(id) {
		return id, nil
	}
	return "", fmt.Errorf("%w: no free id for image %q", ErrDuplicateID, name)
}
