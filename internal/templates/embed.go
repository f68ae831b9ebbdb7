package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

//go:embed all:minimal
var minimalFS embed.FS

//go:embed all:portfolio
var portfolioFS embed.FS

var validTemplates = []string{"minimal", "portfolio"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "minimal":
		return fs.Sub(minimalFS, "minimal")
	case "portfolio":
		return fs.Sub(portfolioFS, "portfolio")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

type TemplateData struct {
	Name string
}

// Dotfiles are stored without their leading dot.
var renamed = map[string]string{
	"gitignore": ".gitignore",
}

func ProcessFilename(filename string, data TemplateData) (string, bool) {
	dir, base := path.Split(filename)
	if dotted, ok := renamed[base]; ok {
		filename = dir + dotted
	}
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Name}}", data.Name)

	return []byte(result)
}

func DeriveSiteName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "mysite"
	}
	return base
}
