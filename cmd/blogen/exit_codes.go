package main

import (
	"errors"
	"os"

	blogen "github.com/rhaeguard/blogen"
	"github.com/rhaeguard/blogen/internal/config"
	"github.com/rhaeguard/blogen/internal/pipeline"
	"github.com/rhaeguard/blogen/internal/styles"
)

// Exit codes for the blogen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or theme
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, blogen.ErrReadPost) ||
		errors.Is(err, blogen.ErrReadStylesheet) ||
		errors.Is(err, blogen.ErrWriteOutput) ||
		errors.Is(err, pipeline.ErrTemplateNotFound) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, styles.ErrUnknownTheme) {
		return ExitUsage
	}

	return ExitGeneral
}
