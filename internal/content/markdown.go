package content

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Markdown converts post bodies. Raw HTML in the source is dropped by the
// renderer, so the output is safe to embed as template.HTML.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				meta.Meta,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

func (m *Markdown) Render(source string) (template.HTML, error) {
	html, _, err := m.convert([]byte(source))
	return html, err
}

// RenderWithMeta converts a document that may start with a YAML front
// matter block and returns the front matter separately.
func (m *Markdown) RenderWithMeta(source []byte) (template.HTML, map[string]any, error) {
	return m.convert(source)
}

func (m *Markdown) convert(source []byte) (template.HTML, map[string]any, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := m.md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return "", nil, fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), meta.Get(ctx), nil
}
