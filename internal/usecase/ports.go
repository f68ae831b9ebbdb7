package usecase

import (
	"html/template"
	iofs "io/fs"
	"time"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/core"
)

// PageRenderer produces the page fragment for a matched route.
type PageRenderer interface {
	Render(match core.RouteMatch) (template.HTML, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

// RenderObserver receives one observation per rendered page.
type RenderObserver interface {
	ObserveRender(kind core.RouteKind, status int, elapsed time.Duration)
}

type FileSystem = fs.FileSystem

// AssetSource is a tree copied into the output root during export.
type AssetSource struct {
	Name string
	FS   iofs.FS
}

type nopObserver struct{}

func (nopObserver) ObserveRender(core.RouteKind, int, time.Duration) {}
