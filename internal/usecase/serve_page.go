package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/3-lines-studio/folio/internal/core"
)

type ServePageInput struct {
	RequestPath string
}

type ServePageOutput struct {
	Match  core.RouteMatch
	Status int
	HTML   string
	Error  error
}

type PageService struct {
	router   *core.Router
	renderer PageRenderer
	shells   ShellSource
	observer RenderObserver
}

func NewPageService(router *core.Router, renderer PageRenderer, shells ShellSource) *PageService {
	return &PageService{
		router:   router,
		renderer: renderer,
		shells:   shells,
		observer: nopObserver{},
	}
}

func (s *PageService) WithObserver(observer RenderObserver) *PageService {
	if observer != nil {
		s.observer = observer
	}
	return s
}

// Render produces the fragment for path without touching the shell.
func (s *PageService) Render(path string) (core.RenderedPage, error) {
	match := s.router.Match(path)
	body, err := s.renderer.Render(match)
	if err != nil {
		return core.RenderedPage{Match: match}, fmt.Errorf("failed to render %s: %w", match.Path, err)
	}
	return core.RenderedPage{Body: string(body), Match: match}, nil
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	start := time.Now()

	page, err := s.Render(input.RequestPath)
	decision := core.DecidePageAction(page.Match)
	out := ServePageOutput{Match: page.Match, Status: decision.Status}
	defer func() {
		s.observer.ObserveRender(out.Match.Kind, out.Status, time.Since(start))
	}()

	if err != nil {
		return out.fail(err)
	}

	shell, err := s.shells.Shell(ctx)
	if err != nil {
		return out.fail(fmt.Errorf("failed to load shell: %w", err))
	}

	html, err := core.SpliceFragment(shell, page.Body)
	if err != nil {
		return out.fail(err)
	}
	out.HTML = html
	return out
}

func (o *ServePageOutput) fail(err error) ServePageOutput {
	o.Status = http.StatusInternalServerError
	o.Error = err
	return *o
}
