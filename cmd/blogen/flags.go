package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the blogen CLI.
type cliFlags struct {
	config  string
	out     string
	drafts  bool
	serve   bool
	watch   bool
	addr    string
	verbose bool
	version bool
}

// parseFlags parses command-line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("blogen", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name (default: conventional layout, no file needed)")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (overrides config)")
	fs.BoolVar(&f.drafts, "drafts", false, "include draft posts in the index and feed")
	fs.BoolVar(&f.serve, "serve", false, "serve the output directory after building")
	fs.BoolVar(&f.watch, "watch", false, "rebuild the site when inputs change")
	fs.StringVar(&f.addr, "addr", ":9999", "listen address for --serve")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print per-stage progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}
