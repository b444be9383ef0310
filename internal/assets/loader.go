package assets

// AssetLoader defines the contract for loading the stylesheet and XHTML
// template sets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads a template set by directory name.
	// Returns ErrTemplateSetNotFound if no template of the set exists and
	// ErrIncompleteTemplateSet if only some of them do.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
