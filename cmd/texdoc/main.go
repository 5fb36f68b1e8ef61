// Command texdoc builds LaTeX documents from JSON descriptors, Markdown
// and Word files, and serves the same rendering over HTTP.
//
// Usage:
//
//	texdoc build <input> [--preamble file] [--out file] [--chapters] [--numbered] [--upload]
//	texdoc batch <dir> <glob> [--out dir]
//	texdoc serve [--addr :8080]
//	texdoc format <text>
//
// Preamble files are YAML or TOML. Without --preamble the per-user
// preamble ($XDG_CONFIG_HOME/texdoc/preamble.toml) is used when present.
// Uploads and the server read their settings from the environment and
// from a .env file in the working directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "texdoc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd(os.Stdout).Execute()
}
