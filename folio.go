// Package folio serves a portfolio and blog with server-side rendering and
// exports the same pages as a static site.
package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/3-lines-studio/folio/internal/adapters/env"
	"github.com/3-lines-studio/folio/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/folio/internal/adapters/http"
	"github.com/3-lines-studio/folio/internal/config"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/metrics"
	"github.com/3-lines-studio/folio/internal/runtime"
	"github.com/3-lines-studio/folio/internal/usecase"
	"github.com/3-lines-studio/folio/internal/view"
)

type Config = config.Config

type App struct {
	cfg      config.Config
	mode     core.Mode
	fs       fs.FileSystem
	store    *content.Store
	router   *core.Router
	renderer *view.Renderer
	logger   *zap.Logger
	metrics  *metrics.Collector
	now      func() time.Time
}

type Option func(*App)

func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMode overrides the mode detected from FOLIO_DEV.
func WithMode(mode core.Mode) Option {
	return func(a *App) { a.mode = mode }
}

// WithClock sets the clock used to stamp sitemap entries.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithMetrics records renders, requests and exported files on collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(a *App) { a.metrics = collector }
}

// New loads the content store. Content problems are fatal.
func New(cfg config.Config, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		mode:   env.DetectMode(),
		fs:     fs.NewOSFileSystem(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	store, err := content.Load(cfg.Path(cfg.ContentDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	a.store = store
	a.router = core.NewRouter(cfg.RootAliases...)
	a.renderer = view.NewRenderer(store)
	return a, nil
}

func (a *App) Store() *content.Store {
	return a.store
}

func (a *App) IsDev() bool {
	return a.mode == core.ModeDev
}

// BuiltShellPath is where the production shell lives: {outputDir}/index.html.
func (a *App) BuiltShellPath() string {
	return filepath.Join(a.cfg.Path(a.cfg.OutputDir), "index.html")
}

// Handler builds the HTTP handler. In production the built shell must
// exist; in dev the source shell is re-read on every request.
func (a *App) Handler() (http.Handler, error) {
	shells, err := a.shellSource()
	if err != nil {
		return nil, err
	}

	service := usecase.NewPageService(a.router, a.renderer, shells)
	if a.metrics != nil {
		service.WithObserver(a.metrics)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpadapter.RequestLogger(a.logger))
	if a.metrics != nil {
		r.Use(httpadapter.Metrics(a.metrics))
		r.Handle("/metrics", a.metrics.Handler())
	}

	outputDir := a.cfg.Path(a.cfg.OutputDir)
	r.Handle(runtime.Prefix+"*", runtime.Handler())
	r.Handle("/assets/*", httpadapter.NewAssetHandler(filepath.Join(outputDir, "assets"), "/assets/"))

	pages := httpadapter.NewPageHandler(service, a.logger, a.IsDev())
	var files http.Handler
	if a.IsDev() {
		files = httpadapter.NewPublicHandler(pages, a.cfg.Path(a.cfg.PublicDir))
	} else {
		files = httpadapter.NewPublicHandler(pages, outputDir, a.cfg.Path(a.cfg.PublicDir))
	}
	r.Get("/*", files.ServeHTTP)
	r.Head("/*", files.ServeHTTP)

	return r, nil
}

func (a *App) shellSource() (usecase.ShellSource, error) {
	if a.IsDev() {
		return usecase.NewSourceShell(a.fs, a.cfg.Path(a.cfg.SourceShell), a.defaultShell), nil
	}
	shell, err := usecase.LoadBuiltShell(a.fs, a.BuiltShellPath())
	if err != nil {
		return nil, fmt.Errorf("%w (run 'folio export --from-source' first)", err)
	}
	return shell, nil
}

func (a *App) defaultShell() (string, error) {
	return core.RenderHTMLShell(a.cfg.Titles.Home, strings.TrimRight(a.cfg.BaseURL, "/")+"/", runtime.ClientPath, "")
}

type ExportOptions struct {
	// FromSource seeds {outputDir}/index.html from the source shell when no
	// built shell exists, creating the output directory if needed.
	FromSource bool
}

// Export runs the static export pass over every configured route and post.
func (a *App) Export(ctx context.Context, opts ExportOptions) usecase.ExportOutput {
	outputDir := a.cfg.Path(a.cfg.OutputDir)

	if opts.FromSource {
		if err := a.seedShell(outputDir); err != nil {
			return usecase.ExportOutput{Error: err}
		}
	}

	service := usecase.NewExportService(a.fs, a.router, a.renderer, a.store).WithClock(a.now)
	out := service.Export(ctx, usecase.ExportInput{
		OutputDir:  outputDir,
		ShellPath:  a.BuiltShellPath(),
		BaseURL:    a.cfg.BaseURL,
		SiteTitle:  a.cfg.SiteTitle,
		Routes:     a.cfg.Routes,
		Titles:     usecase.Titles(a.cfg.Titles),
		SitemapURL: a.cfg.SitemapURL,
		Assets:     a.exportAssets(),
	})

	if a.metrics != nil {
		for _, f := range out.Files {
			a.metrics.ObserveExportedFile(f.Kind.String())
		}
	}
	return out
}

func (a *App) exportAssets() []usecase.AssetSource {
	var sources []usecase.AssetSource
	if public := a.cfg.Path(a.cfg.PublicDir); public != "" && a.fs.FileExists(public) {
		sources = append(sources, usecase.AssetSource{Name: "public", FS: os.DirFS(public)})
	}
	return append(sources, usecase.AssetSource{Name: "runtime", FS: runtime.FS()})
}

func (a *App) seedShell(outputDir string) error {
	if err := a.fs.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	target := a.BuiltShellPath()
	if a.fs.FileExists(target) {
		return nil
	}

	source := a.cfg.Path(a.cfg.SourceShell)
	var shell []byte
	if source != "" && a.fs.FileExists(source) {
		data, err := a.fs.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read source shell: %w", err)
		}
		shell = data
	} else {
		html, err := a.defaultShell()
		if err != nil {
			return err
		}
		shell = []byte(html)
	}

	if err := a.fs.WriteFile(target, shell, 0o644); err != nil {
		return fmt.Errorf("failed to seed shell: %w", err)
	}
	return nil
}

// IsPreconditionError reports whether err means the export could not start.
func IsPreconditionError(err error) bool {
	return errors.Is(err, usecase.ErrShellMissing) || errors.Is(err, usecase.ErrOutputMissing)
}
