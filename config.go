package blogen

import "github.com/rhaeguard/blogen/internal/config"

// Config is the site build configuration. See DefaultConfig for the
// conventional directory layout.
type Config = config.Config

// DefaultConfig returns the conventional layout: templates/, content/posts/,
// static/, main.scss and build/ relative to the working directory.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}

// LoadConfig loads configuration from a file path or config name.
// A name is searched as name.yaml/name.yml in the current directory, then
// in the user config directory under blogen/.
func LoadConfig(nameOrPath string) (*Config, error) {
	return config.LoadConfig(nameOrPath)
}
