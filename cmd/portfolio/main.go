// Package main provides the entry point for the portfolio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/n3il-kb/portfolio/cmd/portfolio/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
