package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sortdir/cmd/sortdir"
	"github.com/arthur-debert/sortdir/internal/version"
)

func main() {
	rootCmd := sortdir.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SORTDIR",
		Section: "1",
		Source:  "sortdir " + version.Version,
		Manual:  "sortdir manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
