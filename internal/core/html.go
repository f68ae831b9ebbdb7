package core

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

const (
	OutletMarker    = "<!--ssr-outlet-->"
	OutletEndMarker = "<!--/ssr-outlet-->"
	HeadCloseMarker = "</head>"
)

var ErrMissingOutlet = errors.New("shell has no " + OutletMarker + " marker")

var (
	canonicalPattern      = regexp.MustCompile(`<link rel="canonical" href="[^"]*"\s*/?>`)
	titlePattern          = regexp.MustCompile(`<title>[^<]*</title>`)
	structuredDataPattern = regexp.MustCompile(`<script type="application/ld\+json">[\s\S]*?</script>`)
)

// SpliceFragment places fragment right after the outlet marker. Anything
// between the outlet marker and a following end marker is replaced, so
// splicing an already rendered document again yields the same result.
func SpliceFragment(shell, fragment string) (string, error) {
	start := strings.Index(shell, OutletMarker)
	if start < 0 {
		return "", ErrMissingOutlet
	}

	bodyStart := start + len(OutletMarker)
	end := bodyStart
	if i := strings.Index(shell[bodyStart:], OutletEndMarker); i >= 0 {
		end = bodyStart + i + len(OutletEndMarker)
	}

	var b strings.Builder
	b.Grow(len(shell) + len(fragment) + len(OutletEndMarker))
	b.WriteString(shell[:bodyStart])
	b.WriteString(fragment)
	b.WriteString(OutletEndMarker)
	b.WriteString(shell[end:])
	return b.String(), nil
}

// RewriteCanonical replaces the href of the first canonical link tag.
// It reports false when the document has no canonical link.
func RewriteCanonical(doc, href string) (string, bool) {
	tag := fmt.Sprintf(`<link rel="canonical" href="%s" />`, html.EscapeString(href))
	return replaceFirst(canonicalPattern, doc, tag)
}

// RewriteTitle replaces the text of the first title tag.
func RewriteTitle(doc, title string) (string, bool) {
	return replaceFirst(titlePattern, doc, "<title>"+html.EscapeString(title)+"</title>")
}

// UpsertStructuredData replaces the first JSON-LD script of doc with block,
// or inserts block right before the closing head tag. Leading indentation
// of block is dropped so repeated upserts leave the document unchanged.
func UpsertStructuredData(doc, block string) string {
	block = strings.TrimLeft(block, " \t")
	if out, ok := replaceFirst(structuredDataPattern, doc, block); ok {
		return out
	}

	i := strings.Index(doc, HeadCloseMarker)
	if i < 0 {
		return doc
	}
	return doc[:i] + block + "\n  " + doc[i:]
}

func replaceFirst(re *regexp.Regexp, doc, replacement string) (string, bool) {
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return doc, false
	}
	return doc[:loc[0]] + replacement + doc[loc[1]:], true
}

// RenderHTMLShell builds the default document skeleton used when no shell
// has been built yet.
func RenderHTMLShell(title, canonicalURL, scriptSrc, cssHref string) (string, error) {
	if scriptSrc == "" {
		return "", fmt.Errorf("missing script src")
	}

	head := `<meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" />`
	head += fmt.Sprintf("\n    <title>%s</title>", html.EscapeString(title))
	head += fmt.Sprintf("\n    <link rel=\"canonical\" href=\"%s\" />", html.EscapeString(canonicalURL))
	if cssHref != "" {
		head += fmt.Sprintf("\n    <link rel=\"stylesheet\" href=\"%s\" />", html.EscapeString(cssHref))
	}

	doc := fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    %s
  </head>
  <body>
    <div id="root">%s</div>
    <script src="%s" defer></script>
  </body>
</html>
`, head, OutletMarker, html.EscapeString(scriptSrc))

	return doc, nil
}
