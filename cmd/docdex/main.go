/*
Docdex resolves loosely typed command phrases against a hierarchical
markdown documentation index and renders the matching document.

Phrases tolerate casing differences and small typos: each word is
corrected against the index using edit distance before descent, so
"array.splcie" still lands on array/splice.md. The interactive prompt
adds shell-style tab completion over the same index walk.

# Usage

Build the local index from a docs directory and look something up:

	docdex build
	docdex show array splice

Run the interactive prompt with tab completion:

	docdex repl

Keep the index in sync with a remote source:

	docdex sync

The index is cached as a msgpack file and only rebuilt or re-fetched
when the source actually changed. Editors can embed the resolver
through `docdex serve`, a msgpack IPC mode on stdin/stdout.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on
first run:

	[docs]
	dir = "docs/"
	cache_path = "cache/index.bin"
	watch = false

	[remote]
	url = ""
	sync_interval_min = 1440

	[repl]
	suggest_limit = 24
	render = true
*/
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}
