package epub

import (
	"time"

	"github.com/myuanzhang/reader-epub/internal/content"
)

// Logger receives one line per build stage. log.Printf satisfies it.
type Logger func(format string, args ...any)

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	codeTheme     string
	styleName     string
	templateSet   string
	forewordTitle string
	now           func() time.Time
	logf          Logger
}

// DefaultForewordTitle is the page title given to foreword.md.
const DefaultForewordTitle = content.DefaultForewordTitle

// WithCodeTheme sets the chroma style used for fenced code blocks.
// Unknown names fall back to chroma's default style.
func WithCodeTheme(name string) Option {
	return func(b *Builder) {
		b.cfg.codeTheme = name
	}
}

// WithStyle sets the stylesheet name loaded from the asset loader.
func WithStyle(name string) Option {
	return func(b *Builder) {
		b.cfg.styleName = name
	}
}

// WithTemplateSet sets the template set name loaded from the asset loader.
func WithTemplateSet(name string) Option {
	return func(b *Builder) {
		b.cfg.templateSet = name
	}
}

// WithAssetLoader replaces the embedded stylesheet and templates.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Builder) {
		b.loader = loader
	}
}

// WithForewordTitle sets the title of the foreword page.
func WithForewordTitle(title string) Option {
	return func(b *Builder) {
		b.cfg.forewordTitle = title
	}
}

// WithClock sets the time source for dcterms:modified and stage timings.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("epub: WithClock requires a non-nil clock")
	}
	return func(b *Builder) {
		b.cfg.now = now
	}
}

// WithLogger receives build progress. The default discards it.
func WithLogger(logf Logger) Option {
	return func(b *Builder) {
		if logf != nil {
			b.cfg.logf = logf
		}
	}
}

// ManifestItem is one entry of the package manifest.
type ManifestItem struct {
	ID         string
	Href       string // relative to OEBPS
	MediaType  string
	Properties string
}

// Result describes a finished build.
type Result struct {
	OutputDir string // build directory, relative to the store root
	Pages     int
	Articles  int
	Images    int
	Manifest  []ManifestItem
	Spine     []string // manifest ids in reading order
	Modified  time.Time
	Elapsed   time.Duration
}
