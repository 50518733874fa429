// Package config loads and validates site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rhaeguard/blogen/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion (1MB).
const maxConfigSize = 1 << 20

// Config holds all configuration for a site build.
type Config struct {
	Site     SiteConfig      `yaml:"site"`
	Paths    PathsConfig     `yaml:"paths"`
	Build    BuildConfig     `yaml:"build"`
	Projects []ProjectConfig `yaml:"projects"`
}

// SiteConfig identifies the site itself.
type SiteConfig struct {
	Title   string `yaml:"title"`   // Site title, substituted into the index shell
	BaseURL string `yaml:"baseURL"` // Absolute URL prefix for feed links (empty = no feed)
	Author  string `yaml:"author"`  // Feed author name
}

// PathsConfig defines the input and output directory layout.
type PathsConfig struct {
	Templates  string `yaml:"templates"`  // Directory with shell, post and index templates
	Posts      string `yaml:"posts"`      // Directory with *.md post sources
	Static     string `yaml:"static"`     // Static asset directory
	Stylesheet string `yaml:"stylesheet"` // Site stylesheet source file
	Out        string `yaml:"out"`        // Output directory
}

// BuildConfig selects build behavior.
type BuildConfig struct {
	Theme          string `yaml:"theme"`          // Highlight theme name (chroma style)
	CleanURLs      *bool  `yaml:"cleanURLs"`      // posts/<slug>/ URLs (default true); false = flat <slug>.html
	OptimizeImages *bool  `yaml:"optimizeImages"` // Re-encode PNG assets (default true)
}

// ProjectConfig is one entry of the optional project list override.
type ProjectConfig struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// DefaultConfig returns the conventional layout: templates/, content/posts/,
// static/, main.scss and build/ relative to the working directory, so a bare
// run needs no config file at all.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{Title: "blog"},
		Paths: PathsConfig{
			Templates:  "templates",
			Posts:      filepath.Join("content", "posts"),
			Static:     "static",
			Stylesheet: "main.scss",
			Out:        "build",
		},
		Build: BuildConfig{Theme: "monokai"},
	}
}

// CleanURLs reports whether posts get directory-style URLs.
func (c *Config) CleanURLs() bool {
	return c.Build.CleanURLs == nil || *c.Build.CleanURLs
}

// OptimizeImages reports whether PNG assets are re-encoded on copy.
func (c *Config) OptimizeImages() bool {
	return c.Build.OptimizeImages == nil || *c.Build.OptimizeImages
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), maxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	applyPathDefaults(cfg)

	return cfg, nil
}

// applyPathDefaults fills path fields an explicit config left empty.
func applyPathDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Paths.Templates == "" {
		cfg.Paths.Templates = def.Paths.Templates
	}
	if cfg.Paths.Posts == "" {
		cfg.Paths.Posts = def.Paths.Posts
	}
	if cfg.Paths.Static == "" {
		cfg.Paths.Static = def.Paths.Static
	}
	if cfg.Paths.Stylesheet == "" {
		cfg.Paths.Stylesheet = def.Paths.Stylesheet
	}
	if cfg.Paths.Out == "" {
		cfg.Paths.Out = def.Paths.Out
	}
	if cfg.Build.Theme == "" {
		cfg.Build.Theme = def.Build.Theme
	}
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/blogen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "blogen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
