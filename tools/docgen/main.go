// Package main generates CLI reference documentation from the 3c command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/threecommas/cmd/3c/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	if err := generate(*output); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, dir); err != nil {
		return fmt.Errorf("generating docs: %w", err)
	}
	return nil
}
