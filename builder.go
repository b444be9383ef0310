package epub

import (
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/myuanzhang/reader-epub/internal/assets"
	"github.com/myuanzhang/reader-epub/internal/content"
	"github.com/myuanzhang/reader-epub/internal/markup"
	"github.com/myuanzhang/reader-epub/internal/media"
	"github.com/myuanzhang/reader-epub/internal/opf"
)

// BuildDir is the package directory created below the store root.
const BuildDir = "epub-build"

// Builder assembles EPUB package directories. Create with NewBuilder and
// call Build once per run. A Builder is not safe for concurrent use.
type Builder struct {
	cfg      builderConfig
	loader   AssetLoader
	renderer *markup.Renderer
}

// NewBuilder creates a Builder with default configuration.
// Returns error if asset loading or template parsing fails.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			codeTheme:     markup.DefaultCodeTheme,
			styleName:     DefaultStyle,
			templateSet:   DefaultTemplateSet,
			forewordTitle: DefaultForewordTitle,
			now:           time.Now,
			logf:          func(string, ...any) {},
		},
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(b)
	}

	renderer, err := markup.NewRenderer(b.loader,
		markup.WithCodeTheme(b.cfg.codeTheme),
		markup.WithStyle(b.cfg.styleName),
		markup.WithTemplateSet(b.cfg.templateSet),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	b.renderer = renderer

	if r, ok := b.loader.(assetOrigins); ok {
		for _, o := range r.Origins() {
			b.cfg.logf("using %s", o)
		}
	}

	return b, nil
}

// assetOrigins is implemented by loaders that track where each asset was
// read from, such as the one returned by NewAssetLoader.
type assetOrigins interface {
	Origins() []assets.Origin
}

// build carries the state of one run from stage to stage.
type build struct {
	src   fs.FS
	store Store
	book  *content.Book

	images   []media.Image
	nav      []opf.NavEntry
	toc      []opf.TOCSection
	manifest *opf.Manifest
	pkg      *opf.Package
}

// stage is one step of a build. Stages run in order and each depends on
// the output of the previous ones.
type stage struct {
	name string
	run  func(*build) error
}

// Build reads the content tree from src and writes BuildDir into store,
// replacing any previous build.
func (b *Builder) Build(src fs.FS, store Store) (*Result, error) {
	start := b.cfg.now()
	run := &build{src: src, store: store}

	stages := []stage{
		{"reset output", b.reset},
		{"load content", b.load},
		{"write stylesheet", b.writeStylesheet},
		{"write cover", b.writeCover},
		{"write pages", b.writePages},
		{"write articles", b.writeArticles},
		{"write table of contents", b.writeTOC},
		{"write nav", b.writeNav},
		{"copy images", b.copyImages},
		{"write package document", b.writePackage},
		{"write container", b.writeContainer},
	}

	for _, s := range stages {
		began := b.cfg.now()
		if err := s.run(run); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		b.cfg.logf("%s (%s)", s.name, b.cfg.now().Sub(began).Round(time.Microsecond))
	}

	return b.result(run, start), nil
}

func (b *Builder) result(run *build, start time.Time) *Result {
	res := &Result{
		OutputDir: BuildDir,
		Pages:     len(run.book.Pages),
		Articles:  len(run.book.Articles()),
		Images:    len(run.images),
		Spine:     run.pkg.Spine,
		Modified:  run.pkg.Modified,
		Elapsed:   b.cfg.now().Sub(start),
	}
	for _, item := range run.manifest.Items() {
		res.Manifest = append(res.Manifest, ManifestItem(item))
	}
	return res
}

// oebps joins elem below BuildDir/OEBPS.
func oebps(elem ...string) string {
	return path.Join(append([]string{BuildDir, opf.OEBPSDir}, elem...)...)
}

func (b *Builder) reset(run *build) error {
	if err := run.store.RemoveAll(BuildDir); err != nil {
		return err
	}
	dirs := []string{
		path.Join(BuildDir, opf.MetaInfDir),
		oebps(opf.TextDir),
		oebps(opf.ImagesDir),
		oebps(opf.StylesDir),
	}
	for _, dir := range dirs {
		if err := run.store.MkdirAll(dir); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) load(run *build) error {
	book, err := content.NewLoader(run.src,
		content.WithForewordTitle(b.cfg.forewordTitle),
		content.WithReservedIDs(opf.IsReservedID),
	).Load()
	if err != nil {
		return err
	}
	images, err := media.Collect(run.src, book)
	if err != nil {
		return err
	}
	manifest, err := opf.BuildManifest(book, images)
	if err != nil {
		return err
	}
	run.book = book
	run.images = images
	run.manifest = manifest
	run.nav = opf.BuildNav(book)
	run.toc = opf.BuildTOC(book)
	return opf.CheckNav(manifest, run.nav, run.toc)
}

func (b *Builder) writeStylesheet(run *build) error {
	return run.store.WriteFile(oebps(opf.StyleHref), []byte(b.renderer.Stylesheet()))
}

func (b *Builder) writeCover(run *build) error {
	doc, err := b.renderer.Cover(run.book.Metadata)
	if err != nil {
		return err
	}
	return run.store.WriteFile(oebps(opf.CoverHref), doc)
}

func (b *Builder) writePages(run *build) error {
	for _, p := range run.book.Pages {
		doc, err := b.renderer.Page(p)
		if err != nil {
			return err
		}
		if err := run.store.WriteFile(oebps(opf.TextHref(p.File)), doc); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeArticles(run *build) error {
	for _, a := range run.book.Articles() {
		doc, err := b.renderer.Article(a)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", a.Column, a.FileName, err)
		}
		if err := run.store.WriteFile(oebps(opf.TextHref(opf.ArticleFile(a))), doc); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeTOC(run *build) error {
	doc, err := b.renderer.TOC(run.toc)
	if err != nil {
		return err
	}
	return run.store.WriteFile(oebps(opf.TOCHref), doc)
}

func (b *Builder) copyImages(run *build) error {
	return media.Copy(run.src, run.store, oebps(opf.ImagesDir), run.images)
}

func (b *Builder) writePackage(run *build) error {
	pkg, err := opf.NewPackage(run.book, run.manifest, b.cfg.now())
	if err != nil {
		return err
	}
	data, err := pkg.Bytes()
	if err != nil {
		return err
	}
	run.pkg = pkg
	return run.store.WriteFile(oebps(opf.PackageFile), data)
}

func (b *Builder) writeNav(run *build) error {
	doc, err := b.renderer.Nav(run.book.Metadata.Title, run.nav)
	if err != nil {
		return err
	}
	return run.store.WriteFile(oebps(opf.NavHref), doc)
}

func (b *Builder) writeContainer(run *build) error {
	if err := run.store.WriteFile(path.Join(BuildDir, opf.MimetypeFile), []byte(opf.Mimetype)); err != nil {
		return err
	}
	data, err := opf.Container()
	if err != nil {
		return err
	}
	return run.store.WriteFile(path.Join(BuildDir, opf.MetaInfDir, opf.ContainerFile), data)
}
