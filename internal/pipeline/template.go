package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rhaeguard/blogen/internal/dateutil"
)

// Placeholder tokens with fixed meaning across all templates.
const (
	ContentPlaceholder  = "{{CONTENT}}"
	PostsPlaceholder    = "{{POSTS}}"
	ProjectsPlaceholder = "{{PROJECTS}}"
)

// Template file names expected in the templates directory.
const (
	ShellTemplateFile = "html_template.html"
	PostTemplateFile  = "single_post.html"
	IndexTemplateFile = "index.html"
)

// ErrTemplateNotFound indicates a missing template file.
var ErrTemplateNotFound = errors.New("template file not found")

// existsVarPattern finds conditional variable declarations in templates.
var existsVarPattern = regexp.MustCompile(`\{\{exists:([A-Za-z0-9_-]+)\}\}`)

// TemplateSet holds the three site templates, loaded once at startup and
// read-only afterwards. Conditional variable names are discovered by
// scanning all templates at load time.
type TemplateSet struct {
	Shell string // Outer HTML document wrapping every page
	Post  string // Single post body
	Index string // Home page with post and project listings

	conditionals map[string]*regexp.Regexp
}

// NewTemplateSet creates a TemplateSet from template strings.
func NewTemplateSet(shell, post, index string) *TemplateSet {
	t := &TemplateSet{
		Shell: strings.TrimSpace(shell),
		Post:  strings.TrimSpace(post),
		Index: strings.TrimSpace(index),
	}
	t.conditionals = scanConditionals(t.Shell, t.Post, t.Index)
	return t
}

// LoadTemplateSet reads the three template files from dir.
func LoadTemplateSet(dir string) (*TemplateSet, error) {
	read := func(name string) (string, error) {
		data, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- template dir is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, filepath.Join(dir, name))
			}
			return "", fmt.Errorf("reading template %s: %w", name, err)
		}
		return string(data), nil
	}

	shell, err := read(ShellTemplateFile)
	if err != nil {
		return nil, err
	}
	post, err := read(PostTemplateFile)
	if err != nil {
		return nil, err
	}
	index, err := read(IndexTemplateFile)
	if err != nil {
		return nil, err
	}

	return NewTemplateSet(shell, post, index), nil
}

// ConditionalVars returns the metadata key names referenced by
// {{exists:NAME}} markers in any template.
func (t *TemplateSet) ConditionalVars() []string {
	names := make([]string, 0, len(t.conditionals))
	for name := range t.conditionals {
		names = append(names, name)
	}
	return names
}

// scanConditionals collects every {{exists:NAME}} marker and precompiles the
// block pattern for each name. Matching is non-greedy and spans newlines.
func scanConditionals(templates ...string) map[string]*regexp.Regexp {
	conditionals := map[string]*regexp.Regexp{}
	for _, tpl := range templates {
		for _, m := range existsVarPattern.FindAllStringSubmatch(tpl, -1) {
			name := m[1]
			if _, ok := conditionals[name]; ok {
				continue
			}
			quoted := regexp.QuoteMeta(name)
			conditionals[name] = regexp.MustCompile(
				`(?s)\{\{exists:` + quoted + `\}\}(.*?)\{\{exists:` + quoted + `:end\}\}`)
		}
	}
	return conditionals
}

// RenderPage substitutes content and metadata into one template.
//
// Order: the content block first, then every metadata key as {{key}} (date
// values reformatted to the short date-only form), then conditional blocks —
// kept when the variable is a metadata key, removed otherwise. Placeholders
// for keys not present in the metadata stay verbatim in the output.
func (t *TemplateSet) RenderPage(tpl, content string, meta map[string]string) (string, error) {
	out := strings.ReplaceAll(tpl, ContentPlaceholder, content)

	for key, value := range meta {
		if key == "date" {
			parsed, err := dateutil.ParsePostDate(value)
			if err != nil {
				return "", err
			}
			value = dateutil.FormatShort(parsed)
		}
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}

	for name, pattern := range t.conditionals {
		if _, ok := meta[name]; ok {
			out = pattern.ReplaceAllString(out, "$1")
		} else {
			out = pattern.ReplaceAllString(out, "")
		}
	}

	return out, nil
}

// RenderPost renders one post body into the post template, nested inside
// the outer shell.
func (t *TemplateSet) RenderPost(body string, meta map[string]string) (string, error) {
	page, err := t.RenderPage(t.Post, body, meta)
	if err != nil {
		return "", err
	}
	return t.RenderPage(t.Shell, page, meta)
}

// RenderIndex renders the home page from pre-built post and project
// listings, nested inside the outer shell.
func (t *TemplateSet) RenderIndex(postsHTML, projectsHTML string, meta map[string]string) (string, error) {
	page := strings.ReplaceAll(t.Index, PostsPlaceholder, postsHTML)
	page = strings.ReplaceAll(page, ProjectsPlaceholder, projectsHTML)

	page, err := t.RenderPage(page, "", meta)
	if err != nil {
		return "", err
	}
	return t.RenderPage(t.Shell, page, meta)
}
