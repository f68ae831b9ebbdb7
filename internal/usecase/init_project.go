package usecase

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/folio/internal/templates"
)

var ErrProjectNotEmpty = errors.New("directory is not empty")

type InitInput struct {
	ProjectDir string
	Template   string
}

type InitOutput struct {
	Files []string
	Error error
}

type InitService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewInitService(fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		fs:  fs,
		cli: cli,
	}
}

// InitProject writes a starter site into an empty or missing directory.
func (s *InitService) InitProject(input InitInput) InitOutput {
	s.cli.PrintHeader("Folio Init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{Error: fmt.Errorf("failed to read directory: %w", err)}
		}
		if len(entries) > 0 {
			return InitOutput{Error: fmt.Errorf("%w: %s", ErrProjectNotEmpty, input.ProjectDir)}
		}
	}

	templateFS, err := templates.GetTemplate(input.Template)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return InitOutput{Error: fmt.Errorf("invalid template '%s' (available: %v)", input.Template, templates.Names())}
		}
		return InitOutput{Error: err}
	}

	data := templates.TemplateData{Name: templates.DeriveSiteName(input.ProjectDir)}

	var files []string
	err = iofs.WalkDir(templateFS, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return s.fs.MkdirAll(filepath.Join(input.ProjectDir, filepath.FromSlash(path)), 0o755)
		}

		raw, err := iofs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		name, isTemplate := templates.ProcessFilename(path, data)
		target := filepath.Join(input.ProjectDir, filepath.FromSlash(name))
		if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}
		if err := s.fs.WriteFile(target, templates.ProcessContent(raw, isTemplate, data), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}

		if isTemplate {
			s.cli.PrintFile(target + " (generated)")
		} else {
			s.cli.PrintFile(target)
		}
		files = append(files, target)
		return nil
	})
	if err != nil {
		return InitOutput{Files: files, Error: err}
	}

	s.cli.PrintSuccess("Created %d files using '%s' template", len(files), input.Template)
	return InitOutput{Files: files}
}
