package blogen

import "time"

// Option customizes a Site.
type Option func(*Site)

// WithDrafts includes draft posts in the index listing and the feed.
func WithDrafts(include bool) Option {
	return func(s *Site) { s.includeDrafts = include }
}

// WithProjects replaces the compiled-in project list.
func WithProjects(projects []Project) Option {
	return func(s *Site) { s.projects = projects }
}

// WithClock injects the time source used for the feed's publication
// instant. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// WithLogf injects a logging function for per-stage progress messages.
// The default discards them.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Site) { s.logf = logf }
}
