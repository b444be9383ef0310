package assets

import (
	"errors"
	"fmt"
	"sync"
)

// Origin tells where a resolved asset was read from.
type Origin struct {
	Kind string // KindStyle or KindTemplateSet
	Name string
	Path string // file or directory on disk; empty for the built-in copy
}

// Custom reports whether the asset came from the override directory.
func (o Origin) Custom() bool { return o.Path != "" }

func (o Origin) String() string {
	if !o.Custom() {
		return fmt.Sprintf("%s %q: built-in", o.Kind, o.Name)
	}
	return fmt.Sprintf("%s %q: %s", o.Kind, o.Name, o.Path)
}

// AssetResolver serves the stylesheet and template sets from an override
// directory when it has them, and from the embedded defaults otherwise.
// Only a not-found result falls through to the embedded copy; invalid names,
// incomplete sets and read errors are returned as is.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without an override directory
	embedded *EmbeddedLoader

	mu      sync.Mutex
	origins []Origin
}

// NewAssetResolver returns a resolver over the embedded assets, with
// customBasePath layered on top when it is not empty. The directory must
// exist and be readable.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle returns the stylesheet called name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		css, err := r.custom.LoadStyle(name)
		if err == nil {
			r.record(Origin{Kind: KindStyle, Name: name, Path: r.custom.stylePath(name)})
			return css, nil
		}
		if !errors.Is(err, ErrStyleNotFound) {
			return "", err
		}
	}

	css, err := r.embedded.LoadStyle(name)
	if err != nil {
		return "", err
	}
	r.record(Origin{Kind: KindStyle, Name: name})
	return css, nil
}

// LoadTemplateSet returns the template set called name. An override
// directory replaces the whole set; its files are never mixed with the
// embedded ones.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	if r.custom != nil {
		ts, err := r.custom.LoadTemplateSet(name)
		if err == nil {
			r.record(Origin{Kind: KindTemplateSet, Name: name, Path: r.custom.templateSetDir(name)})
			return ts, nil
		}
		if !errors.Is(err, ErrTemplateSetNotFound) {
			return nil, err
		}
	}

	ts, err := r.embedded.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	r.record(Origin{Kind: KindTemplateSet, Name: name})
	return ts, nil
}

// Origins lists the assets resolved so far, one entry per kind and name,
// in first-load order. A reload updates the entry in place.
func (r *AssetResolver) Origins() []Origin {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Origin(nil), r.origins...)
}

// HasCustomLoader reports whether an override directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func (r *AssetResolver) record(o Origin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, prev := range r.origins {
		if prev.Kind == o.Kind && prev.Name == o.Name {
			r.origins[i] = o
			return
		}
	}
	r.origins = append(r.origins, o)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
