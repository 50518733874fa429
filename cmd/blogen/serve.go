package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/radovskyb/watcher"

	blogen "github.com/rhaeguard/blogen"
	"github.com/rhaeguard/blogen/internal/fileutil"
)

// watchDebounce batches bursts of filesystem events into one rebuild.
const watchDebounce = 200 * time.Millisecond

// serveSite serves the output directory for local preview.
func serveSite(dir, addr string) error {
	fmt.Fprintf(os.Stderr, "Serving %s on %s\n", dir, addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           http.FileServer(http.Dir(dir)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}

// watchAndRebuild re-runs the full build whenever an input directory
// changes. There is no incremental rebuild: every change regenerates the
// whole site. Blocks until the watcher is closed.
func watchAndRebuild(cfg *blogen.Config, build func() error) {
	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := build(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			case err := <-w.Error:
				fmt.Fprintln(os.Stderr, err)
			case <-w.Closed:
				return
			}
		}
	}()

	for _, dir := range []string{cfg.Paths.Posts, cfg.Paths.Templates, cfg.Paths.Static} {
		if !fileutil.DirExists(dir) {
			continue
		}
		if err := w.AddRecursive(dir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	if fileutil.FileExists(cfg.Paths.Stylesheet) {
		if err := w.Add(cfg.Paths.Stylesheet); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}

	fmt.Fprintln(os.Stderr, "Watching for changes...")
	if err := w.Start(watchDebounce); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
