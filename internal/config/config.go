package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/myuanzhang/reader-epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidConfig  = errors.New("invalid config")
)

// FileNames are the config files looked up in the working directory, in order.
var FileNames = []string{"epub.yaml", "epub.yml"}

// Defaults.
const (
	DefaultContentDir    = "content"
	DefaultOutputDir     = "dist"
	DefaultCodeTheme     = "github"
	DefaultStyleName     = "magazine"
	DefaultTemplateSet   = "default"
	DefaultForewordTitle = "卷首语"
)

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxNameLength  = 64   // style, template set and theme names
	MaxTitleLength = 100  // page titles
)

// Config holds the optional overrides of a build.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Style   StyleConfig   `yaml:"style"`
	Assets  AssetsConfig  `yaml:"assets"`
	Pages   PagesConfig   `yaml:"pages"`
}

// ContentConfig locates the content tree.
type ContentConfig struct {
	Dir string `yaml:"dir"` // Relative to the working directory (default: "content")
}

// OutputConfig locates the build output.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Parent of epub-build/ (default: "dist")
}

// StyleConfig selects the stylesheet, templates and code highlighting.
type StyleConfig struct {
	Name        string `yaml:"name"`        // Stylesheet in assets styles/ (default: "magazine")
	TemplateSet string `yaml:"templateSet"` // Directory in assets templates/ (default: "default")
	CodeTheme   string `yaml:"codeTheme"`   // Chroma style (default: "github")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PagesConfig defines standalone page options.
type PagesConfig struct {
	ForewordTitle string `yaml:"forewordTitle"` // Title of foreword.md (default: "卷首语")
}

// Validate checks required fields, directory containment and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateDir("content.dir", c.Content.Dir); err != nil {
		return err
	}
	if err := validateDir("output.dir", c.Output.Dir); err != nil {
		return err
	}
	if filepath.Clean(c.Content.Dir) == filepath.Clean(c.Output.Dir) {
		return fmt.Errorf("%w: output.dir must differ from content.dir (%q)", ErrInvalidConfig, c.Output.Dir)
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.name", c.Style.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.templateSet", c.Style.TemplateSet, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.codeTheme", c.Style.CodeTheme, MaxNameLength); err != nil {
		return err
	}

	if strings.TrimSpace(c.Pages.ForewordTitle) == "" {
		return fmt.Errorf("%w: pages.forewordTitle: required", ErrInvalidConfig)
	}
	return validateFieldLength("pages.forewordTitle", c.Pages.ForewordTitle, MaxTitleLength)
}

// validateDir requires a non-empty relative path that stays below the
// working directory.
func validateDir(fieldName, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: %s: required", ErrInvalidConfig, fieldName)
	}
	if err := validateFieldLength(fieldName, dir, MaxPathLength); err != nil {
		return err
	}
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%w: %s: must be relative to the working directory, got %q", ErrInvalidConfig, fieldName, dir)
	}
	clean := filepath.ToSlash(filepath.Clean(dir))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s: must name a directory below the working directory, got %q", ErrInvalidConfig, fieldName, dir)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: DefaultContentDir},
		Output:  OutputConfig{Dir: DefaultOutputDir},
		Style: StyleConfig{
			Name:        DefaultStyleName,
			TemplateSet: DefaultTemplateSet,
			CodeTheme:   DefaultCodeTheme,
		},
		Assets: AssetsConfig{BasePath: ""},
		Pages:  PagesConfig{ForewordTitle: DefaultForewordTitle},
	}
}

// LoadConfig loads a config file. Keys the file omits keep their defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is discovered in the working directory
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Discover loads the first of FileNames found in dir. Without a config
// file it returns DefaultConfig and an empty path.
func Discover(dir string) (*Config, string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return DefaultConfig(), "", nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
