// Package epub builds the unpacked directory structure of an EPUB 3
// magazine from a content tree of columns and markdown articles.
//
// # Quick Start
//
// Create a builder, then build from a content tree into an output store:
//
//	b, err := epub.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(os.DirFS("content"), epub.NewDirStore("dist"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputDir) // epub-build
//
// The store receives a complete package directory ready to be zipped:
//
//	epub-build/
//	├── mimetype
//	├── META-INF/container.xml
//	└── OEBPS/
//	    ├── content.opf
//	    ├── nav.xhtml
//	    ├── cover.xhtml
//	    ├── styles/style.css
//	    ├── images/
//	    └── text/
//
// Every build removes the previous epub-build directory first. A failed
// build leaves a partial directory that the next run replaces.
//
// # Content Tree
//
//	content/
//	├── metadata.json          # {"id", "title", "creator", "coverImage"}
//	├── foreword.md            # optional standalone page
//	└── columns/
//	    └── {column}/
//	        └── *.md           # articles with optional front matter
//
// Articles may start with a YAML front matter block declaring title,
// author and image. Files named intro*, overview* or NN-* open their column.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := epub.NewBuilder(
//	    epub.WithCodeTheme("monokai"),
//	    epub.WithForewordTitle("编者按"),
//	    epub.WithLogger(log.Printf),
//	)
//
// # Custom Assets
//
// Override the built-in stylesheet and templates using AssetLoader:
//
//	loader, err := epub.NewAssetLoader("/path/to/assets")
//	b, err := epub.NewBuilder(epub.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── magazine.css
//	└── templates/
//	    └── default/
//	        ├── document.xhtml
//	        ├── article.xhtml
//	        ├── cover.xhtml
//	        ├── toc.xhtml
//	        └── nav.xhtml
//
// # Error Handling
//
// Errors wrap the sentinels of this package; test them with errors.Is:
//
//	if errors.Is(err, epub.ErrLoad) { ... }  // content tree missing or malformed
//	if errors.Is(err, epub.ErrAsset) { ... } // declared image missing
//	if errors.Is(err, epub.ErrWrite) { ... } // output not writable
package epub
