package blogen

import "time"

// Post is one rendered markdown article with associated metadata.
// Posts are constructed while their source file is converted, collected in
// glob order, and consumed once when the index is built; they are never
// mutated after creation.
type Post struct {
	Slug    string            // Source filename minus its markdown extension
	Href    string            // Site-relative link to the rendered page
	Meta    map[string]string // Raw key/value pairs from the metadata block
	Date    time.Time         // Parsed "date" metadata; zero when absent
	HasMeta bool              // Whether the source carried a metadata block
}

// Title returns the post's title metadata, empty when absent.
func (p Post) Title() string {
	return p.Meta["title"]
}

// IsDraft reports whether the post is a draft. A post is a draft when its
// "draft" metadata is present with any value other than the literal "false".
func (p Post) IsDraft() bool {
	draft, ok := p.Meta["draft"]
	return ok && draft != "false"
}

// Listed reports whether the post appears in the index listing. A listing
// entry needs a title and a date, so posts without a metadata block or with
// either key missing are excluded; their pages are still generated.
func (p Post) Listed() bool {
	return p.HasMeta && p.Title() != "" && !p.Date.IsZero()
}

// Project is one entry of the static project list.
type Project struct {
	Title string
	URL   string
}

// BuildResult summarizes one completed build.
type BuildResult struct {
	Posts  []Post // Every generated post, in glob order
	Listed int    // Posts included in the index listing
	OutDir string
}
