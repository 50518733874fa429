package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Metadata comment delimiters as they appear in the rendered HTML.
const (
	metaOpen  = "<!--"
	metaClose = "-->"
)

// ErrMalformedMetadata indicates a metadata line without a key=value form.
var ErrMalformedMetadata = errors.New("malformed metadata line")

// ExtractMetadata parses the leading metadata comment of a rendered post.
//
// The block is an HTML comment at the very start of the rendered output,
// holding one "key = value" declaration per non-blank line. The first "="
// delimits key from value and both sides are trimmed. The comment's rendered
// form is stripped from the returned body.
//
// A post without a leading comment yields an empty mapping, found=false,
// and the body unchanged. A non-blank line without "=" is an error.
func ExtractMetadata(renderedHTML string) (meta map[string]string, body string, found bool, err error) {
	meta = map[string]string{}

	if !strings.HasPrefix(renderedHTML, metaOpen) {
		return meta, renderedHTML, false, nil
	}
	end := strings.Index(renderedHTML, metaClose)
	if end == -1 {
		return meta, renderedHTML, false, nil
	}

	for _, line := range strings.Split(renderedHTML[len(metaOpen):end], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, "", false, fmt.Errorf("%w: %q", ErrMalformedMetadata, line)
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	body = strings.TrimLeft(renderedHTML[end+len(metaClose):], "\n")
	return meta, body, true, nil
}
