// fontface self-hosts Google Fonts stylesheets for local TTF files.
package main

import (
	"fmt"
	"os"

	"github.com/joeblew999/plat-fontface/internal/cli"
)

// version is overridden at release time with -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "fontface error: %v\n", err)
		os.Exit(1)
	}
}
