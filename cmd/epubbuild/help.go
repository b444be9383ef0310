package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: epubbuild [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build an EPUB 3 package directory from ./content into ./dist/epub-build.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content layout:")
	fmt.Fprintln(w, "  content/metadata.json          title, creator, id, coverImage")
	fmt.Fprintln(w, "  content/foreword.md            optional standalone page")
	fmt.Fprintln(w, "  content/columns/<name>/*.md    articles with optional front matter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  An optional epub.yaml (or epub.yml) in the working directory may set")
	fmt.Fprintln(w, "  content.dir, output.dir, style.name, style.templateSet, style.codeTheme,")
	fmt.Fprintln(w, "  assets.basePath and pages.forewordTitle.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet       Only show errors")
	fmt.Fprintln(w, "  -v, --verbose     Show each build stage with timing")
	fmt.Fprintln(w, "      --version     Show version information")
	fmt.Fprintln(w, "  -h, --help        Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage or config, 3 content or output I/O, 4 missing image")
}
