// Package feed builds the site's Atom feed from the post listing.
package feed

import (
	"errors"
	"fmt"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// ErrInvalidFeed indicates the generated feed failed validation.
var ErrInvalidFeed = errors.New("atom feed is not valid")

// Entry is one feed item, already resolved to an absolute link.
type Entry struct {
	Title   string
	Link    string
	Date    time.Time
	Content string
}

// Generate renders an Atom feed document for the given entries.
// The now parameter is the feed's publication instant, injectable for tests.
func Generate(title, siteURL, author string, entries []Entry, now time.Time) ([]byte, error) {
	f := atom.Feed{
		Title:   title,
		Link:    siteURL,
		PubDate: now,
	}
	// Atom requires a feed-level author; fall back to the site title.
	if author == "" {
		author = title
	}
	f.AddAuthor(atom.Author{Name: author})

	for _, e := range entries {
		f.AddEntry(&atom.Entry{
			Title:   e.Title,
			Link:    e.Link,
			PubDate: e.Date,
			Content: e.Content,
		})
	}

	if errs := f.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, errs[0])
	}

	xml, err := f.GenXml()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}
	return xml, nil
}
