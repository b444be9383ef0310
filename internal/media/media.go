// Package media collects the images a book references and copies them into
// the package image directory, one copy per distinct base name.
package media

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/fileutil"
)

// ErrAsset indicates a declared image is missing or cannot be read.
var ErrAsset = errors.New("asset unavailable")

// FallbackMediaType is used for extensions outside the known table. It is
// permissive rather than a registered EPUB core media type.
const FallbackMediaType = "image/*"

var mediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// MediaType maps an image file name to its media type by extension.
func MediaType(name string) string {
	if mt, ok := mediaTypes[strings.ToLower(path.Ext(name))]; ok {
		return mt
	}
	return FallbackMediaType
}

// Image is one file to be copied into the package.
type Image struct {
	Name      string // base name inside the image directory
	Source    string // slash path inside the content root
	MediaType string
	Cover     bool
}

// Collect lists the cover image followed by every article image, keyed by
// base name. The first declaration of a base name wins; later ones share
// its copy. Every declaration must name a regular file in fsys, including
// the ones that share a copy.
func Collect(fsys fs.FS, book *content.Book) ([]Image, error) {
	var images []Image
	seen := make(map[string]bool)

	add := func(declared, source string, cover bool) error {
		if err := checkSource(fsys, declared, source); err != nil {
			return err
		}
		name := fileutil.BaseName(declared)
		if seen[name] {
			return nil
		}
		seen[name] = true
		images = append(images, Image{Name: name, Source: source, MediaType: MediaType(name), Cover: cover})
		return nil
	}

	if cover := book.Metadata.CoverImage; cover != "" {
		if err := add(cover, cleanSlash(cover), true); err != nil {
			return nil, err
		}
	}
	for _, a := range book.Articles() {
		if a.Image == "" {
			continue
		}
		if err := add(a.Image, ResolveArticleImage(a), false); err != nil {
			return nil, err
		}
	}
	return images, nil
}

func checkSource(fsys fs.FS, declared, source string) error {
	if !fs.ValidPath(source) {
		return fmt.Errorf("%w: %s: path leaves the content root", ErrAsset, declared)
	}
	info, err := fs.Stat(fsys, source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrAsset, source, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s: not a regular file", ErrAsset, source)
	}
	return nil
}

// ResolveArticleImage returns the content-root path of an article image.
// Paths containing a separator are relative to the content root; bare
// names are relative to the article's own directory.
func ResolveArticleImage(a content.Article) string {
	if fileutil.IsFilePath(a.Image) {
		return cleanSlash(a.Image)
	}
	return path.Join(a.SourceDir, a.Image)
}

// Copy reads each image from fsys and writes it to dir in store. The
// directory must already exist.
func Copy(fsys fs.FS, store fileutil.Store, dir string, images []Image) error {
	for _, img := range images {
		if err := checkSource(fsys, img.Source, img.Source); err != nil {
			return err
		}
		data, err := fs.ReadFile(fsys, img.Source)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrAsset, img.Source, err)
		}
		if err := store.WriteFile(path.Join(dir, img.Name), data); err != nil {
			return err
		}
	}
	return nil
}

func cleanSlash(p string) string {
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}
