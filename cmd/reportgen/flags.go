package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the reportgen command.
type cliFlags struct {
	manifest     string
	output       string
	title        string
	tocWidth     int
	noThumbnails bool
	snapshots    bool
	demo         bool
	verbose      bool
}

// parseFlags parses command-line arguments into cliFlags.
// The returned FlagSet exposes usage for error reporting.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("reportgen", flag.ContinueOnError)
	fs.StringVarP(&f.manifest, "manifest", "m", "", "YAML report manifest path")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (overrides the manifest)")
	fs.StringVar(&f.title, "title", "", "report title (overrides the manifest)")
	fs.IntVar(&f.tocWidth, "toc-width", 0, "table-of-contents column width in grid units (1-11)")
	fs.BoolVar(&f.noThumbnails, "no-thumbnails", false, "embed interactive documents inline instead of thumbnailing")
	fs.BoolVar(&f.snapshots, "snapshots", false, "thumbnail documents through headless Chrome")
	fs.BoolVar(&f.demo, "demo", false, "write a demo report with generated charts")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, fs, err
	}

	if !f.demo && f.manifest == "" {
		return nil, fs, fmt.Errorf("either --manifest or --demo is required")
	}
	if f.tocWidth < 0 || f.tocWidth > 11 {
		return nil, fs, fmt.Errorf("--toc-width must be between 1 and 11, got %d", f.tocWidth)
	}

	return f, fs, nil
}
