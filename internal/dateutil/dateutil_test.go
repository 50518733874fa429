package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParsePostDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "utc offset",
			input: "2023-01-01T10:00:00+00:00",
			want:  time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "non-utc offset",
			input: "2023-06-15T08:30:00+04:00",
			want:  time.Date(2023, 6, 15, 8, 30, 0, 0, time.FixedZone("", 4*60*60)),
		},
		{
			name:    "date only",
			input:   "2023-01-01",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePostDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("error = %v, want ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePostDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParsePostDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatShort(t *testing.T) {
	t.Parallel()

	d := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	if got := FormatShort(d); got != "2023-01-01" {
		t.Errorf("FormatShort() = %q, want 2023-01-01", got)
	}
}
