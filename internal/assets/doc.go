// Package assets provides the stylesheet and XHTML templates used to render
// an EPUB structure.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in magazine style)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. This enables overriding the stylesheet or a whole template set while
// keeping the other defaults. AssetResolver.Origins reports which layer served
// each asset; the builder logs it.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css            # stylesheet (e.g., magazine.css)
//	└── templates/
//	    └── {name}/
//	        ├── document.xhtml    # XHTML page wrapper
//	        ├── article.xhtml     # article heading, byline and image
//	        ├── cover.xhtml       # cover page body
//	        ├── toc.xhtml         # in-book table of contents body
//	        └── nav.xhtml         # EPUB 3 navigation document
//
// Templates are text/template sources. Values are escaped with the "xml"
// function registered by the markup package.
//
// # Security
//
// Asset names are limited to ASCII letters, digits, '-' and '_'.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
