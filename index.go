package blogen

import (
	"fmt"
	"strings"

	"github.com/rhaeguard/blogen/internal/dateutil"
)

// renderPostList builds the home page's post listing. Entries show the bare
// date and a link to the post; callers pass only posts that should appear.
func renderPostList(posts []Post) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, p := range posts {
		fmt.Fprintf(&b, `<li><span>%s</span>&nbsp;<a href="%s">%s</a></li>`,
			dateutil.FormatShort(p.Date), p.Href, p.Title())
	}
	b.WriteString("</ul>")
	return b.String()
}

// renderProjectList builds the home page's project listing, unfiltered and
// in declaration order.
func renderProjectList(projects []Project) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, p := range projects {
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, p.URL, p.Title)
	}
	b.WriteString("</ul>")
	return b.String()
}
