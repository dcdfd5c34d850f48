package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hallowmark/artikel"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File            string `arg:"" optional:"" help:"HTML file to read (default: stdin)"`
	URL             string `help:"Canonical URL, used to seed metadata.url/hostname"`
	JSON            bool   `short:"j" help:"Print the full ExtractResult as JSON instead of plain text"`
	IncludeComments bool   `help:"Keep the raw comment-node subtree in the output"`
	IncludeImages   bool   `help:"Collect <img> entries into the result"`
	IncludeLinks    bool   `help:"Preserve <a href> instead of flattening to text"`
	FavorPrecision  bool   `help:"Use stricter content-scoring thresholds"`
	FavorRecall     bool   `help:"Use looser content-scoring thresholds"`
}

// Run reads HTML from cli.File (or stdin when unset), extracts content
// and metadata, and writes the result to stdout.
func (c *CLI) Run(stdin io.Reader, stdout io.Writer) error {
	data, err := c.readInput(stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := artikel.DefaultOptions()
	opts.URL = c.URL
	opts.IncludeComments = c.IncludeComments
	opts.IncludeImages = c.IncludeImages
	opts.IncludeLinks = c.IncludeLinks
	opts.FavorPrecision = c.FavorPrecision
	opts.FavorRecall = c.FavorRecall

	result, err := artikel.ExtractBytes(data, opts)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if c.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(stdout, result.ContentText)
	return nil
}

func (c *CLI) readInput(stdin io.Reader) ([]byte, error) {
	if c.File == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(c.File)
}
