package content

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// loadMarkdownPosts reads dir/*.md in file name order. Posts without an id
// in their front matter keep id 0 for the caller to assign.
func loadMarkdownPosts(dir string, md *Markdown) ([]BlogPost, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	posts := make([]BlogPost, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		post, err := parseMarkdownPost(md, source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if post.Slug == "" {
			post.Slug = strings.TrimSuffix(name, ".md")
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func parseMarkdownPost(md *Markdown, source []byte) (BlogPost, error) {
	body, fields, err := md.RenderWithMeta(source)
	if err != nil {
		return BlogPost{}, err
	}

	var post BlogPost
	if len(fields) > 0 {
		raw, err := yaml.Marshal(fields)
		if err != nil {
			return BlogPost{}, fmt.Errorf("failed to read front matter: %w", err)
		}
		if err := yaml.Unmarshal(raw, &post); err != nil {
			return BlogPost{}, fmt.Errorf("failed to parse front matter: %w", err)
		}
	}

	post.Content = stripFrontMatter(string(source))
	post.Format = FormatMarkdown
	post.BodyHTML = body
	return post, nil
}

func stripFrontMatter(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	if !strings.HasPrefix(source, frontMatterDelimiter+"\n") {
		return source
	}

	rest := source[len(frontMatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelimiter+"\n")
	if end < 0 {
		if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
			return ""
		}
		return source
	}
	return strings.TrimLeft(rest[end+len(frontMatterDelimiter)+2:], "\n")
}

var blankLines = regexp.MustCompile(`\n[ \t]*\n+`)

// plainTextHTML escapes text and keeps its line structure: blank lines
// separate paragraphs, single newlines become line breaks.
func plainTextHTML(text string) template.HTML {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range blankLines.Split(text, -1) {
		lines := strings.Split(strings.TrimSpace(para), "\n")
		for i, line := range lines {
			lines[i] = template.HTMLEscapeString(strings.TrimRight(line, " \t"))
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>\n"))
		b.WriteString("</p>\n")
	}
	return template.HTML(b.String())
}
