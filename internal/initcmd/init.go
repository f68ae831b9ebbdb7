package initcmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/3-lines-studio/folio/internal/adapters/fs"
	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
	"github.com/3-lines-studio/folio/internal/usecase"
)

var ErrUnhealthy = errors.New("project has problems")

func Run(projectDir string, templateName string, cli usecase.CLIOutput) error {
	service := usecase.NewInitService(fs.NewOSFileSystem(), cli)
	out := service.InitProject(usecase.InitInput{ProjectDir: projectDir, Template: templateName})
	if out.Error != nil {
		return out.Error
	}

	cli.PrintDone("")
	cli.PrintStep("", "Next steps:")
	cli.PrintStep("", "  cd %s", projectDir)
	cli.PrintStep("", "  folio serve")
	cli.PrintStep("", "  folio export --from-source")
	return nil
}

// Layout names the project paths doctor checks, relative to the project
// directory unless absolute.
type Layout struct {
	ContentDir  string
	SourceShell string
	PublicDir   string
	OutputDir   string
}

// Doctor checks a project and repairs what it safely can: a missing public
// directory is created. Content and shell problems are reported.
func Doctor(projectDir string, layout Layout, cli usecase.CLIOutput) error {
	cli.PrintHeader("Folio Doctor")

	osfs := fs.NewOSFileSystem()
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(projectDir, p)
	}

	problems := 0

	store, err := content.Load(resolve(layout.ContentDir))
	if err != nil {
		cli.PrintError("content: %v", err)
		problems++
	} else {
		cli.PrintSuccess("content: %d posts, %d roles", len(store.Posts()), len(store.Experience()))
	}

	if err := checkShell(osfs, resolve(layout.SourceShell)); err != nil {
		cli.PrintError("source shell: %v", err)
		problems++
	} else {
		cli.PrintSuccess("source shell: %s", layout.SourceShell)
	}

	publicDir := resolve(layout.PublicDir)
	if !osfs.FileExists(publicDir) {
		if err := osfs.MkdirAll(publicDir, 0o755); err != nil {
			return fmt.Errorf("failed to create public directory: %w", err)
		}
		cli.PrintSuccess("Created %s", publicDir)
	}

	built := filepath.Join(resolve(layout.OutputDir), "index.html")
	if osfs.FileExists(built) {
		if err := checkShell(osfs, built); err != nil {
			cli.PrintError("built shell: %v", err)
			problems++
		} else {
			cli.PrintSuccess("built shell: %s", built)
		}
	} else {
		cli.PrintWarning("no built shell at %s; run 'folio export --from-source' to create one", built)
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d found", ErrUnhealthy, problems)
	}
	cli.PrintDone("Everything looks good!")
	return nil
}

func checkShell(osfs *fs.OSFileSystem, path string) error {
	data, err := osfs.ReadFile(path)
	if err != nil {
		return err
	}
	doc := string(data)

	var missing []string
	if !strings.Contains(doc, core.OutletMarker) {
		missing = append(missing, core.OutletMarker)
	}
	if !strings.Contains(doc, core.HeadCloseMarker) {
		missing = append(missing, core.HeadCloseMarker)
	}
	if _, ok := core.RewriteCanonical(doc, ""); !ok {
		missing = append(missing, "canonical link")
	}
	if _, ok := core.RewriteTitle(doc, ""); !ok {
		missing = append(missing, "<title>")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}
