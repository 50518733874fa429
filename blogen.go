package blogen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2"

	"github.com/rhaeguard/blogen/internal/assets"
	"github.com/rhaeguard/blogen/internal/config"
	"github.com/rhaeguard/blogen/internal/dateutil"
	"github.com/rhaeguard/blogen/internal/feed"
	"github.com/rhaeguard/blogen/internal/fileutil"
	"github.com/rhaeguard/blogen/internal/pipeline"
	"github.com/rhaeguard/blogen/internal/styles"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter   = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CodeHighlighter = (*pipeline.ChromaHighlighter)(nil)
)

// Output file names inside the output directory.
const (
	stylesheetOutFile = "main.css"
	indexOutFile      = "index.html"
	feedOutFile       = "index.xml"
	postsOutDir       = "posts"
)

// Site orchestrates one build of the static site. Create with NewSite,
// run with Build. A Site is cheap to construct and is not reused across
// builds with different configurations.
type Site struct {
	cfg           *config.Config
	theme         *chroma.Style
	projects      []Project
	converter     pipeline.HTMLConverter
	highlighter   pipeline.CodeHighlighter
	includeDrafts bool
	now           func() time.Time
	logf          func(format string, args ...any)
}

// NewSite creates a Site for the given configuration.
// Returns an error when the configured highlight theme is unknown.
func NewSite(cfg *config.Config, opts ...Option) (*Site, error) {
	theme, err := styles.ResolveTheme(cfg.Build.Theme)
	if err != nil {
		return nil, err
	}

	s := &Site{
		cfg:         cfg,
		theme:       theme,
		projects:    DefaultProjects(),
		converter:   pipeline.NewGoldmarkConverter(),
		highlighter: pipeline.NewChromaHighlighter(theme),
		now:         time.Now,
		logf:        func(string, ...any) {},
	}

	if len(cfg.Projects) > 0 {
		s.projects = make([]Project, len(cfg.Projects))
		for i, p := range cfg.Projects {
			s.projects[i] = Project{Title: p.Title, URL: p.URL}
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Build runs the whole pipeline once: stylesheet compilation, one
// conversion chain per post file, static asset sync, the index page, and
// the feed. Execution is strictly sequential; any stage failure aborts the
// build with no partial-output cleanup.
func (s *Site) Build(ctx context.Context) (*BuildResult, error) {
	templates, err := pipeline.LoadTemplateSet(s.cfg.Paths.Templates)
	if err != nil {
		return nil, err
	}

	outDir := s.cfg.Paths.Out
	if err := fileutil.EnsureDir(outDir); err != nil {
		return nil, err
	}

	if err := s.compileStylesheet(outDir); err != nil {
		return nil, err
	}
	s.logf("compiled %s", stylesheetOutFile)

	posts, bodies, err := s.buildPosts(ctx, templates, outDir)
	if err != nil {
		return nil, err
	}

	if err := assets.Sync(s.cfg.Paths.Static, outDir, s.cfg.OptimizeImages()); err != nil {
		return nil, err
	}
	s.logf("synced static assets")

	listed := s.listedPosts(posts)
	if err := s.buildIndex(templates, outDir, listed); err != nil {
		return nil, err
	}
	s.logf("built %s (%d posts listed)", indexOutFile, len(listed))

	if s.cfg.Site.BaseURL != "" {
		if err := s.buildFeed(outDir, listed, bodies); err != nil {
			return nil, err
		}
		s.logf("built %s", feedOutFile)
	}

	return &BuildResult{Posts: posts, Listed: len(listed), OutDir: outDir}, nil
}

// compileStylesheet writes the compressed site stylesheet, including the
// highlight theme rules, to the output directory.
func (s *Site) compileStylesheet(outDir string) error {
	source, err := os.ReadFile(s.cfg.Paths.Stylesheet) // #nosec G304 -- path comes from config
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadStylesheet, err)
	}

	compiled, err := styles.Compile(string(source), s.theme)
	if err != nil {
		return err
	}

	return writeFile(filepath.Join(outDir, stylesheetOutFile), []byte(compiled))
}

// buildPosts runs the conversion chain for every post file, in glob order.
// It returns the posts plus their rendered bodies, keyed by slug, for
// later feed assembly.
func (s *Site) buildPosts(ctx context.Context, templates *pipeline.TemplateSet, outDir string) ([]Post, map[string]string, error) {
	files, err := filepath.Glob(filepath.Join(s.cfg.Paths.Posts, "*.md"))
	if err != nil {
		return nil, nil, fmt.Errorf("globbing posts: %w", err)
	}

	posts := make([]Post, 0, len(files))
	bodies := make(map[string]string, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		post, body, err := s.buildPost(ctx, templates, outDir, file)
		if err != nil {
			return nil, nil, fmt.Errorf("building %s: %w", file, err)
		}
		posts = append(posts, post)
		bodies[post.Slug] = body
		s.logf("built post %s", post.Slug)
	}

	return posts, bodies, nil
}

// buildPost converts one markdown file into its rendered page.
func (s *Site) buildPost(ctx context.Context, templates *pipeline.TemplateSet, outDir, file string) (Post, string, error) {
	source, err := os.ReadFile(file) // #nosec G304 -- path comes from globbing the posts dir
	if err != nil {
		return Post{}, "", fmt.Errorf("%w: %v", ErrReadPost, err)
	}

	rendered, err := s.converter.ToHTML(ctx, string(source))
	if err != nil {
		return Post{}, "", err
	}

	meta, body, found, err := pipeline.ExtractMetadata(rendered)
	if err != nil {
		return Post{}, "", err
	}

	body, err = s.highlighter.Highlight(body)
	if err != nil {
		return Post{}, "", err
	}

	slug := fileutil.Slug(filepath.Base(file))
	href, outPath := s.postLocation(outDir, slug)
	meta["filename"] = href

	post := Post{Slug: slug, Href: href, Meta: meta, HasMeta: found}
	if date, ok := meta["date"]; ok {
		post.Date, err = dateutil.ParsePostDate(date)
		if err != nil {
			return Post{}, "", err
		}
	}

	page, err := templates.RenderPost(body, meta)
	if err != nil {
		return Post{}, "", err
	}

	if err := fileutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		return Post{}, "", err
	}
	if err := writeFile(outPath, []byte(page)); err != nil {
		return Post{}, "", err
	}

	return post, body, nil
}

// postLocation returns the site-relative href and the output file path for
// a post, depending on the URL shape in use.
func (s *Site) postLocation(outDir, slug string) (href, outPath string) {
	if s.cfg.CleanURLs() {
		return postsOutDir + "/" + slug + "/",
			filepath.Join(outDir, postsOutDir, slug, indexOutFile)
	}
	return slug + ".html", filepath.Join(outDir, slug+".html")
}

// listedPosts filters the index listing: posts with a metadata block whose
// title and date are present, excluding drafts unless configured otherwise.
func (s *Site) listedPosts(posts []Post) []Post {
	listed := make([]Post, 0, len(posts))
	for _, p := range posts {
		if !p.Listed() {
			continue
		}
		if p.IsDraft() && !s.includeDrafts {
			continue
		}
		listed = append(listed, p)
	}
	return listed
}

// buildIndex renders the home page from the post and project listings.
func (s *Site) buildIndex(templates *pipeline.TemplateSet, outDir string, listed []Post) error {
	page, err := templates.RenderIndex(
		renderPostList(listed),
		renderProjectList(s.projects),
		map[string]string{"title": s.cfg.Site.Title},
	)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, indexOutFile), []byte(page))
}

// buildFeed writes the Atom feed for the listed posts.
func (s *Site) buildFeed(outDir string, listed []Post, bodies map[string]string) error {
	baseURL := s.cfg.Site.BaseURL
	entries := make([]feed.Entry, 0, len(listed))
	for _, p := range listed {
		entries = append(entries, feed.Entry{
			Title:   p.Title(),
			Link:    joinURL(baseURL, p.Href),
			Date:    p.Date,
			Content: bodies[p.Slug],
		})
	}

	xml, err := feed.Generate(s.cfg.Site.Title, baseURL, s.cfg.Site.Author, entries, s.now())
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, feedOutFile), xml)
}

// joinURL appends a site-relative href to the base URL without doubling
// the separator.
func joinURL(base, href string) string {
	if base == "" {
		return href
	}
	if base[len(base)-1] == '/' {
		return base + href
	}
	return base + "/" + href
}

// writeFile writes one output file with conventional permissions.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- generated site files are world-readable
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
