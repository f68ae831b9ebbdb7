package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
)

const (
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

type Titles struct {
	Home string
	Blog string
	Post string
}

type ExportInput struct {
	OutputDir string
	// ShellPath defaults to {OutputDir}/index.html.
	ShellPath string
	BaseURL   string
	SiteTitle string
	// Routes are the fixed routes; one route per post is appended.
	Routes []string
	Titles Titles
	// SitemapURL defaults to {BaseURL}/sitemap.xml.
	SitemapURL string
	Assets     []AssetSource
}

type FileKind int

const (
	FilePage FileKind = iota
	FileAsset
	FileSitemap
	FileRobots
)

func (k FileKind) String() string {
	switch k {
	case FilePage:
		return "page"
	case FileAsset:
		return "asset"
	case FileSitemap:
		return "sitemap"
	default:
		return "robots"
	}
}

type ExportedFile struct {
	Path  string
	Route string
	Kind  FileKind
}

type ExportOutput struct {
	Routes []string
	Files  []ExportedFile
	// Warnings name head tags a route's document kept unchanged because the
	// shell had no tag in the expected form.
	Warnings []string
	Error    error
}

type ExportService struct {
	fs       FileSystem
	router   *core.Router
	renderer PageRenderer
	store    *content.Store
	now      func() time.Time
}

func NewExportService(fs FileSystem, router *core.Router, renderer PageRenderer, store *content.Store) *ExportService {
	return &ExportService{
		fs:       fs,
		router:   router,
		renderer: renderer,
		store:    store,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to stamp sitemap entries.
func (s *ExportService) WithClock(now func() time.Time) *ExportService {
	if now != nil {
		s.now = now
	}
	return s
}

// Export writes one HTML file per route followed by assets, sitemap and
// robots. The first error aborts the pass.
func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	shellPath := input.ShellPath
	if shellPath == "" {
		shellPath = filepath.Join(input.OutputDir, "index.html")
	}

	if !s.fs.FileExists(input.OutputDir) {
		return ExportOutput{Error: fmt.Errorf("%w: %s", ErrOutputMissing, input.OutputDir)}
	}
	if !s.fs.FileExists(shellPath) {
		return ExportOutput{Error: fmt.Errorf("%w: %s", ErrShellMissing, shellPath)}
	}

	raw, err := s.fs.ReadFile(shellPath)
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to read shell: %w", err)}
	}
	// Root routes overwrite the shell file, so every route starts from this copy.
	shell := string(raw)

	routes := core.BuildRoutes(input.Routes, s.store.Slugs())
	out := ExportOutput{Routes: routes}

	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			out.Error = err
			return out
		}
		if err := core.ValidateRoutePath(route); err != nil {
			out.Error = fmt.Errorf("invalid route %q: %w", route, err)
			return out
		}

		doc, warnings, err := s.renderRoute(shell, route, input)
		out.Warnings = append(out.Warnings, warnings...)
		if err != nil {
			out.Error = fmt.Errorf("route %s: %w", route, err)
			return out
		}

		path := core.RouteOutputPath(input.OutputDir, route)
		if s.router.IsRoot(route) {
			path = shellPath
		}
		if err := s.write(path, []byte(doc)); err != nil {
			out.Error = err
			return out
		}
		out.Files = append(out.Files, ExportedFile{Path: path, Route: route, Kind: FilePage})
	}

	for _, asset := range input.Assets {
		copied, err := s.fs.CopyTree(asset.FS, input.OutputDir)
		if err != nil {
			out.Error = fmt.Errorf("failed to copy %s: %w", asset.Name, err)
			return out
		}
		for _, path := range copied {
			out.Files = append(out.Files, ExportedFile{Path: path, Kind: FileAsset})
		}
	}

	sitemap, err := core.RenderSitemap(core.BuildSitemap(input.BaseURL, routes, s.now()))
	if err != nil {
		out.Error = fmt.Errorf("failed to render sitemap: %w", err)
		return out
	}
	sitemapPath := filepath.Join(input.OutputDir, SitemapFile)
	if err := s.write(sitemapPath, sitemap); err != nil {
		out.Error = err
		return out
	}
	out.Files = append(out.Files, ExportedFile{Path: sitemapPath, Kind: FileSitemap})

	robotsPath := filepath.Join(input.OutputDir, RobotsFile)
	if !s.fs.FileExists(robotsPath) {
		sitemapURL := input.SitemapURL
		if sitemapURL == "" {
			sitemapURL = strings.TrimRight(input.BaseURL, "/") + "/" + SitemapFile
		}
		if err := s.write(robotsPath, []byte(core.RenderRobots(core.DefaultCrawlers, sitemapURL))); err != nil {
			out.Error = err
			return out
		}
		out.Files = append(out.Files, ExportedFile{Path: robotsPath, Kind: FileRobots})
	}

	return out
}

func (s *ExportService) renderRoute(shell, route string, input ExportInput) (string, []string, error) {
	match := s.router.Match(route)
	body, err := s.renderer.Render(match)
	if err != nil {
		return "", nil, err
	}

	doc, err := core.SpliceFragment(shell, string(body))
	if err != nil {
		return "", nil, err
	}

	var warnings []string
	doc, found := core.RewriteCanonical(doc, strings.TrimRight(input.BaseURL, "/")+route)
	if !found {
		warnings = append(warnings, fmt.Sprintf("%s: canonical link not rewritten (expected <link rel=\"canonical\" href=\"...\" />)", route))
	}

	var post *content.BlogPost
	if match.Kind == core.RouteBlogPost {
		if p, ok := s.store.PostBySlug(match.Slug); ok {
			post = &p
		}
	}
	doc, found = core.RewriteTitle(doc, s.routeTitle(route, post, input))
	if !found {
		warnings = append(warnings, fmt.Sprintf("%s: title not rewritten (expected <title>...</title>)", route))
	}

	script, err := core.StructuredDataScript(structuredData(s.store, input.BaseURL, route, post))
	if err != nil {
		return "", warnings, fmt.Errorf("failed to encode structured data: %w", err)
	}
	return core.UpsertStructuredData(doc, script), warnings, nil
}

func (s *ExportService) routeTitle(route string, post *content.BlogPost, input ExportInput) string {
	switch {
	case s.router.IsRoot(route):
		return input.Titles.Home
	case route == core.BlogIndexPath:
		return input.Titles.Blog
	case strings.HasPrefix(route, core.BlogPostPrefix):
		if post != nil {
			return fmt.Sprintf("%s | Blog | %s", post.Title, s.store.Profile().Name)
		}
		return input.Titles.Post
	default:
		return input.SiteTitle + route
	}
}

func (s *ExportService) write(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
