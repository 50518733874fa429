package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rhaeguard/blogen/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(&cliFlags{})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Paths.Out != "build" {
		t.Errorf("Out = %q, want build", cfg.Paths.Out)
	}
}

func TestLoadConfigOutOverride(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(&cliFlags{out: "public"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Paths.Out != "public" {
		t.Errorf("Out = %q, want public", cfg.Paths.Out)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("site:\n  title: from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(&cliFlags{config: path, out: "dist"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Site.Title != "from file" {
		t.Errorf("Title = %q, want from file", cfg.Site.Title)
	}
	if cfg.Paths.Out != "dist" {
		t.Errorf("Out = %q, want the flag to win", cfg.Paths.Out)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(&cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
}
