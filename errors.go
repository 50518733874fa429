package blogen

import "errors"

// Sentinel errors for build operations.
var (
	ErrReadPost       = errors.New("failed to read post file")
	ErrReadStylesheet = errors.New("failed to read stylesheet")
	ErrWriteOutput    = errors.New("failed to write output file")
)
