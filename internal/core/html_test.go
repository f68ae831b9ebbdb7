package core

import (
	"errors"
	"strings"
	"testing"
)

const testShell = `<!doctype html>
<html lang="en">
  <head>
    <title>Shell</title>
    <link rel="canonical" href="https://example.com/" />
  </head>
  <body>
    <div id="root"><!--ssr-outlet--></div>
  </body>
</html>
`

func TestSpliceFragment(t *testing.T) {
	out, err := SpliceFragment(testShell, "<p>first</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div id="root"><!--ssr-outlet--><p>first</p><!--/ssr-outlet--></div>`
	if !strings.Contains(out, want) {
		t.Errorf("Expected spliced fragment %q in:\n%s", want, out)
	}
}

func TestSpliceFragmentIsIdempotent(t *testing.T) {
	once, err := SpliceFragment(testShell, "<p>one</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := SpliceFragment(once, "<p>one</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != once {
		t.Errorf("Expected re-splice to be stable, got:\n%s", again)
	}

	replaced, err := SpliceFragment(once, "<p>two</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(replaced, "<p>one</p>") {
		t.Error("Expected previous fragment to be replaced")
	}
	if strings.Count(replaced, OutletEndMarker) != 1 {
		t.Errorf("Expected exactly one end marker, got %d", strings.Count(replaced, OutletEndMarker))
	}
}

func TestSpliceFragmentMissingOutlet(t *testing.T) {
	_, err := SpliceFragment("<html></html>", "<p>x</p>")
	if !errors.Is(err, ErrMissingOutlet) {
		t.Errorf("Expected ErrMissingOutlet, got %v", err)
	}
}

func TestRewriteCanonical(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		href   string
		want   string
		wantOK bool
	}{
		{
			name:   "self closing",
			doc:    `<link rel="canonical" href="https://old/" />`,
			href:   "https://example.com/blog",
			want:   `<link rel="canonical" href="https://example.com/blog" />`,
			wantOK: true,
		},
		{
			name:   "not self closing",
			doc:    `<link rel="canonical" href="x">`,
			href:   "https://example.com/",
			want:   `<link rel="canonical" href="https://example.com/" />`,
			wantOK: true,
		},
		{
			name:   "escapes attribute",
			doc:    `<link rel="canonical" href="x" />`,
			href:   `https://example.com/"><script>`,
			want:   `<link rel="canonical" href="https://example.com/&#34;&gt;&lt;script&gt;" />`,
			wantOK: true,
		},
		{
			name:   "only first match",
			doc:    `<link rel="canonical" href="a" /><link rel="canonical" href="b" />`,
			href:   "c",
			want:   `<link rel="canonical" href="c" /><link rel="canonical" href="b" />`,
			wantOK: true,
		},
		{
			name:   "missing",
			doc:    `<head></head>`,
			href:   "c",
			want:   `<head></head>`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RewriteCanonical(tt.doc, tt.href)
			if ok != tt.wantOK {
				t.Errorf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRewriteTitle(t *testing.T) {
	got, ok := RewriteTitle(testShell, `Tips & <Tricks> | Blog`)
	if !ok {
		t.Fatal("Expected title to be rewritten")
	}
	if !strings.Contains(got, "<title>Tips &amp; &lt;Tricks&gt; | Blog</title>") {
		t.Errorf("Expected escaped title, got:\n%s", got)
	}
	if strings.Contains(got, "<title>Shell</title>") {
		t.Error("Expected old title to be removed")
	}
}

func TestUpsertStructuredData(t *testing.T) {
	block := `<script type="application/ld+json">{"new":true}</script>`

	inserted := UpsertStructuredData(testShell, block)
	if !strings.Contains(inserted, block+"\n  </head>") {
		t.Errorf("Expected block before </head>, got:\n%s", inserted)
	}

	existing := strings.Replace(testShell, "</head>", `<script type="application/ld+json">{"old":true}</script></head>`, 1)
	replaced := UpsertStructuredData(existing, block)
	if strings.Contains(replaced, `"old"`) {
		t.Error("Expected existing JSON-LD to be replaced")
	}
	if strings.Count(replaced, "application/ld+json") != 1 {
		t.Errorf("Expected a single JSON-LD block, got:\n%s", replaced)
	}

	if got := UpsertStructuredData("<body></body>", block); got != "<body></body>" {
		t.Errorf("Expected document without head to be unchanged, got %q", got)
	}
}

func TestRenderHTMLShell(t *testing.T) {
	doc, err := RenderHTMLShell("My <Site>", "https://example.com/", "/_folio/client.js", "/assets/site.css")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<title>My &lt;Site&gt;</title>",
		`<link rel="canonical" href="https://example.com/" />`,
		`<link rel="stylesheet" href="/assets/site.css" />`,
		`<div id="root"><!--ssr-outlet--></div>`,
		`<script src="/_folio/client.js" defer></script>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Expected %q in shell:\n%s", want, doc)
		}
	}

	if _, err := RenderHTMLShell("t", "c", "", ""); err == nil {
		t.Error("Expected error for missing script src")
	}
}
