package main

import (
	"errors"
	"os"

	epub "github.com/myuanzhang/reader-epub"
	"github.com/myuanzhang/reader-epub/internal/config"
)

// Exit codes for the epubbuild CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Package directory written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config or assets
	ExitIO      = 3 // Content tree unreadable or output not writable
	ExitAsset   = 4 // Declared image missing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Asset errors (exit 4)
	if errors.Is(err, epub.ErrAsset) {
		return ExitAsset
	}

	// I/O errors (exit 3)
	if errors.Is(err, epub.ErrLoad) ||
		errors.Is(err, epub.ErrWrite) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, epub.ErrStyleNotFound) ||
		errors.Is(err, epub.ErrTemplateSetNotFound) ||
		errors.Is(err, epub.ErrIncompleteTemplateSet) ||
		errors.Is(err, epub.ErrInvalidAssetName) ||
		errors.Is(err, epub.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
