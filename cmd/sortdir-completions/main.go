package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sortdir/cmd/sortdir"
	"github.com/arthur-debert/sortdir/cmd/sortdir/commands/completion"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	shell := os.Args[1]
	if err := completion.Generate(sortdir.NewRootCmd(), shell, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
