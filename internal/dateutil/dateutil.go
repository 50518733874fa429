// Package dateutil handles post publication dates.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate indicates a date value that is not ISO 8601 with offset.
var ErrInvalidDate = errors.New("invalid date")

// PostDateLayout is the required format of the "date" metadata value,
// e.g. "2023-01-01T10:00:00+00:00".
const PostDateLayout = time.RFC3339

// ShortDateLayout is the date-only form used in rendered pages and listings.
const ShortDateLayout = "2006-01-02"

// ParsePostDate parses an ISO 8601 timestamp with offset.
func ParsePostDate(value string) (time.Time, error) {
	t, err := time.Parse(PostDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// FormatShort returns the bare date portion of t.
func FormatShort(t time.Time) string {
	return t.Format(ShortDateLayout)
}
