package epub

import (
	"errors"

	"github.com/myuanzhang/reader-epub/internal/assets"
	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/fileutil"
	"github.com/myuanzhang/reader-epub/internal/markup"
	"github.com/myuanzhang/reader-epub/internal/media"
	"github.com/myuanzhang/reader-epub/internal/opf"
)

// Sentinel errors for build operations.
var (
	// ErrLoad indicates the content tree is missing, unreadable or malformed.
	ErrLoad = content.ErrLoad

	// ErrDuplicateArticle indicates two articles resolve to the same id.
	// Errors matching it also match ErrLoad.
	ErrDuplicateArticle = content.ErrDuplicateArticle

	// ErrAsset indicates a declared cover or article image cannot be copied.
	ErrAsset = media.ErrAsset

	// ErrWrite indicates the output directory could not be created or written.
	ErrWrite = fileutil.ErrWrite

	// ErrDuplicateID indicates two package items would share an id or href.
	ErrDuplicateID = opf.ErrDuplicateID

	// ErrUnknownID indicates a spine or navigation link without a manifest item.
	ErrUnknownID = opf.ErrUnknownID

	// ErrRender indicates markdown or template rendering failed.
	ErrRender = markup.ErrRender
)

// Asset loading errors.
var (
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrTemplateSetNotFound   = assets.ErrTemplateSetNotFound
	ErrIncompleteTemplateSet = assets.ErrIncompleteTemplateSet
	ErrInvalidAssetName      = assets.ErrInvalidAssetName
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
