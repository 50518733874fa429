package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	blogen "github.com/rhaeguard/blogen"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("blogen " + Version)
		return
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run builds the site once, then optionally serves it and watches for
// changes.
func run(flags *cliFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	build := func() error { return buildSite(flags, cfg) }
	if err := build(); err != nil {
		return err
	}

	if flags.watch && flags.serve {
		// Rebuild in the background while serving.
		go watchAndRebuild(cfg, build)
	}

	switch {
	case flags.serve:
		return serveSite(cfg.Paths.Out, flags.addr)
	case flags.watch:
		watchAndRebuild(cfg, build)
	}
	return nil
}

// loadConfig resolves the effective configuration from flags.
func loadConfig(flags *cliFlags) (*blogen.Config, error) {
	cfg := blogen.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = blogen.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
	}
	if flags.out != "" {
		cfg.Paths.Out = flags.out
	}
	return cfg, nil
}

// buildSite runs one full build and reports the result.
func buildSite(flags *cliFlags, cfg *blogen.Config) error {
	opts := []blogen.Option{blogen.WithDrafts(flags.drafts)}
	if flags.verbose {
		opts = append(opts, blogen.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	site, err := blogen.NewSite(cfg, opts...)
	if err != nil {
		return err
	}

	result, err := site.Build(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Built %d posts (%d listed) into %s\n", len(result.Posts), result.Listed, result.OutDir)
	return nil
}
