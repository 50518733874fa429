package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	blogen "github.com/rhaeguard/blogen"
	"github.com/rhaeguard/blogen/internal/config"
	"github.com/rhaeguard/blogen/internal/pipeline"
	"github.com/rhaeguard/blogen/internal/styles"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "generic error",
			err:  errors.New("boom"),
			want: ExitGeneral,
		},
		{
			name: "missing file",
			err:  os.ErrNotExist,
			want: ExitIO,
		},
		{
			name: "wrapped post read error",
			err:  fmt.Errorf("building x.md: %w", blogen.ErrReadPost),
			want: ExitIO,
		},
		{
			name: "missing template",
			err:  fmt.Errorf("building site: %w", pipeline.ErrTemplateNotFound),
			want: ExitIO,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("%w: site.yaml", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "config parse failure",
			err:  config.ErrConfigParse,
			want: ExitUsage,
		},
		{
			name: "unknown theme",
			err:  fmt.Errorf("%w: %q", styles.ErrUnknownTheme, "nope"),
			want: ExitUsage,
		},
		{
			name: "unknown language is a general error",
			err:  fmt.Errorf("building x.md: %w", pipeline.ErrUnknownLanguage),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
