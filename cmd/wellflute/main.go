// Package main is the entry point for the wellflute CLI.
//
// Usage:
//
//	wellflute [flags] <command> [args]
//
// Commands:
//
//	play       - Play a song from the library as timed direction taps
//	analyze    - Show a song's range and transposition report
//	list       - List the song library
//	import     - Recognize sheet images into library songs
//	ai-status  - Show sheet recognition provider status
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/burrowlab/wellflute/cmd/wellflute/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
