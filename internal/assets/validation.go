package assets

import (
	"fmt"
	"regexp"
)

// Kinds of named assets, used in messages and origins.
const (
	KindStyle       = "style"
	KindTemplateSet = "template set"
)

// assetName matches a style file stem or a template set directory name.
var assetName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAssetName reports ErrInvalidAssetName unless name is made of ASCII
// letters, digits, '-' and '_' and starts with a letter or digit. Such a
// name can never carry a separator, an extension or a traversal element.
func ValidateAssetName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrInvalidAssetName, kind)
	}
	if !assetName.MatchString(name) {
		return fmt.Errorf("%w: %s %q: only [A-Za-z0-9_-] allowed", ErrInvalidAssetName, kind, name)
	}
	return nil
}
