// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/myuanzhang/reader-epub/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForContentLoad returns hints for content tree errors.
func ForContentLoad(contentDir string) string {
	return format("expected " + contentDir + "/metadata.json with a \"title\" and " +
		contentDir + "/columns/<name>/*.md; set content.dir in epub.yaml to build another tree")
}

// ForDuplicateID returns a hint for article id collisions.
func ForDuplicateID() string {
	return format("two articles resolve to the same id; change the title in the front matter of one of them")
}

// ForMissingImage returns hints for declared images that cannot be copied.
func ForMissingImage() string {
	return format("image paths containing '/' are relative to the content root; bare names are relative to the article's column directory")
}

// ForOutputDirectory returns hints for output directory creation errors.
// Inside a container the working directory is often a read-only mount.
func ForOutputDirectory() string {
	hints := []string{"check the output directory is writable"}
	if IsInContainer() {
		hints = append(hints, "mount a writable volume for output.dir")
	}
	return formatHints(hints)
}

// ForConfig returns hints for an invalid config file.
func ForConfig(path string) string {
	hint := "supported keys: content.dir, output.dir, style.name, style.templateSet, style.codeTheme, assets.basePath, pages.forewordTitle"
	if path != "" {
		hint = "fix or remove " + path + "; " + hint
	}
	return format(hint)
}

// ForAssetNotFound returns hints for missing styles or template sets.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("built-in: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
