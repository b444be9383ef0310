package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	epub "github.com/myuanzhang/reader-epub"
	"github.com/myuanzhang/reader-epub/internal/config"
	"github.com/myuanzhang/reader-epub/internal/hints"
)

// runMain parses args, runs a build and returns the process exit code.
// Errors are printed to env.Stderr with a hint when one applies.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	switch {
	case flags.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.version:
		fmt.Fprintf(env.Stdout, "epubbuild %s\n", Version)
		return ExitSuccess
	}

	workDir, err := env.Getwd()
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: working directory: %v\n", err)
		return ExitIO
	}

	outDir, err := run(workDir, flags, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "OK: EPUB structure ready at %s\n", outDir)
	}
	return ExitSuccess
}

// runError carries the config path or content directory a hint needs.
type runError struct {
	err        error
	configPath string
	contentDir string
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

// run builds the package below workDir and returns the build directory.
func run(workDir string, flags *cliFlags, env *Environment) (string, error) {
	cfg, cfgPath, err := config.Discover(workDir)
	if err != nil {
		return "", &runError{err: err, configPath: cfgPath}
	}

	opts := []epub.Option{
		epub.WithClock(env.Now),
		epub.WithCodeTheme(cfg.Style.CodeTheme),
		epub.WithStyle(cfg.Style.Name),
		epub.WithTemplateSet(cfg.Style.TemplateSet),
		epub.WithForewordTitle(cfg.Pages.ForewordTitle),
	}
	if flags.verbose {
		opts = append(opts, epub.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	}
	if cfg.Assets.BasePath != "" {
		basePath := cfg.Assets.BasePath
		if !filepath.IsAbs(basePath) {
			basePath = filepath.Join(workDir, basePath)
		}
		loader, err := epub.NewAssetLoader(basePath)
		if err != nil {
			return "", &runError{err: err, configPath: cfgPath}
		}
		opts = append(opts, epub.WithAssetLoader(loader))
	}

	builder, err := epub.NewBuilder(opts...)
	if err != nil {
		return "", &runError{err: err, configPath: cfgPath}
	}

	contentDir := filepath.Join(workDir, filepath.FromSlash(cfg.Content.Dir))
	outputDir := filepath.Join(workDir, filepath.FromSlash(cfg.Output.Dir))
	buildDir := filepath.Join(outputDir, epub.BuildDir)

	res, err := builder.Build(os.DirFS(contentDir), epub.NewDirStore(outputDir))
	if err != nil {
		return buildDir, &runError{err: err, contentDir: cfg.Content.Dir}
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "%d pages, %d articles, %d images in %s\n",
			res.Pages, res.Articles, res.Images, res.Elapsed.Round(time.Millisecond))
	}
	return buildDir, nil
}

// hintFor picks the hint matching err, or "" when none applies.
func hintFor(err error) string {
	var re *runError
	if !errors.As(err, &re) {
		return ""
	}

	switch {
	case errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrInvalidConfig):
		return hints.ForConfig(re.configPath)
	case errors.Is(err, epub.ErrStyleNotFound):
		return hints.ForAssetNotFound([]string{epub.DefaultStyle})
	case errors.Is(err, epub.ErrTemplateSetNotFound):
		return hints.ForAssetNotFound([]string{epub.DefaultTemplateSet})
	case errors.Is(err, epub.ErrDuplicateArticle):
		return hints.ForDuplicateID()
	case errors.Is(err, epub.ErrLoad):
		return hints.ForContentLoad(re.contentDir)
	case errors.Is(err, epub.ErrAsset):
		return hints.ForMissingImage()
	case errors.Is(err, epub.ErrWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}
