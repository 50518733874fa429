// Package pipeline implements the per-post processing stages: markdown to
// HTML conversion, metadata extraction, code highlighting, and placeholder
// template rendering. Stages run in that order and each one operates on the
// previous stage's HTML output.
package pipeline
