// Package main renders reference documentation for the lv CLI as markdown
// pages or man pages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/listing-valuator/cmd/lv/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	root := cmd.Root()
	if err := generate(root, *format, *output); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("lv %s docs generated in %s/\n", *format, *output)
}

func generate(root *cobra.Command, format, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true

	var err error
	switch format {
	case "markdown":
		err = doc.GenMarkdownTree(root, dir)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "LV",
			Section: "1",
			Source:  "listing-valuator",
			Manual:  "lv manual",
		}, dir)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("generating %s docs: %w", format, err)
	}
	return nil
}
