// Command epubbuild builds an EPUB 3 package directory from the content
// tree below the working directory.
package main

import "os"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}
