package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portfolioJSON = `{
  "profile": {
    "name": "Ada Example",
    "title": "Staff Engineer",
    "location": "Lisbon, Portugal",
    "headline": "Building calm software.",
    "jobTitle": "Staff Software Engineer",
    "image": "/profile.jpg",
    "yearsExperience": "10+",
    "contact": {
      "github": "https://github.com/ada",
      "linkedinProfile": "www.linkedin.com/in/ada",
      "email": "ada@example.com"
    }
  },
  "experience": [
    {"position": "Staff Engineer", "company": "Acme", "duration": "2020 - Present", "employmentType": "Full-time", "description": "Platform work."},
    {"position": "Engineer", "company": "Initech", "duration": "2015 - 2020", "location": "Remote", "employmentType": "Full-time", "description": "APIs."}
  ],
  "projects": [{"title": "Folio", "description": "This site."}],
  "allSkills": ["Go", "TypeScript", "PostgreSQL"]
}`

const blogJSON = `[
  {"id": 1, "title": "First Post", "slug": "first-post", "excerpt": "Hello", "summary": "A greeting.", "content": "Hello **world**.", "format": "markdown", "date": "2024-01-02", "author": "Ada Example", "tags": ["go", "web"], "readTime": "3 min read"},
  {"id": 2, "title": "Second Post", "slug": "second-post", "excerpt": "More", "summary": "More words.", "content": "Second body.", "date": "2024-02-03", "author": "Ada Example", "tags": [], "readTime": "1 min read"}
]`

const blogYAML = `- id: 7
  title: From YAML
  slug: from-yaml
  excerpt: yaml excerpt
  summary: yaml summary
  content: "# Heading"
  format: markdown
  date: "2024-03-04"
  author: Ada Example
  tags: [yaml, yaml]
  readTime: 2 min read
`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func contentDir(t *testing.T, blogName, blog string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "portfolio.json"), portfolioJSON)
	writeFile(t, filepath.Join(dir, blogName), blog)
	return dir
}

func TestLoadJSON(t *testing.T) {
	store, err := Load(contentDir(t, "blog.json", blogJSON))
	require.NoError(t, err)

	assert.Equal(t, "Ada Example", store.Profile().Name)
	assert.Len(t, store.Experience(), 2)
	assert.Len(t, store.Projects(), 1)
	assert.Equal(t, []string{"Go", "TypeScript", "PostgreSQL"}, store.Skills())
	assert.Equal(t, []string{"first-post", "second-post"}, store.Slugs())

	post, ok := store.PostBySlug("first-post")
	require.True(t, ok)
	assert.Equal(t, "First Post", post.Title)
	assert.Contains(t, string(post.BodyHTML), "<strong>world</strong>")
}

func TestLoadYAMLKeepsDuplicateTags(t *testing.T) {
	store, err := Load(contentDir(t, "blog.yaml", blogYAML))
	require.NoError(t, err)

	post, ok := store.PostBySlug("from-yaml")
	require.True(t, ok)
	assert.Equal(t, 7, post.ID)
	assert.Equal(t, []string{"yaml", "yaml"}, post.Tags)
	assert.Contains(t, string(post.BodyHTML), `<h1 id="heading">Heading</h1>`)
}

func TestLoadMarkdownPosts(t *testing.T) {
	dir := contentDir(t, "blog.json", blogJSON)
	writeFile(t, filepath.Join(dir, "posts", "b-later.md"), "---\ntitle: Later\ndate: \"2024-05-01\"\ntags:\n  - notes\n---\nSome *markdown* words here.\n")
	writeFile(t, filepath.Join(dir, "posts", "a-earlier.md"), "---\ntitle: Earlier\nslug: earlier\ndate: \"2024-04-01\"\nid: 40\n---\nBody.\n")
	writeFile(t, filepath.Join(dir, "posts", "ignored.txt"), "not a post")

	store, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"first-post", "second-post", "earlier", "b-later"}, store.Slugs())

	earlier, _ := store.PostBySlug("earlier")
	assert.Equal(t, 40, earlier.ID)

	later, ok := store.PostBySlug("b-later")
	require.True(t, ok)
	assert.Equal(t, 41, later.ID)
	assert.Equal(t, "Later", later.Title)
	assert.Equal(t, []string{"notes"}, later.Tags)
	assert.Equal(t, "Some *markdown* words here.\n", later.Content)
	assert.Equal(t, 4, later.WordCount())
	assert.Contains(t, string(later.BodyHTML), "<em>markdown</em>")
	assert.NotContains(t, string(later.BodyHTML), "title:")
}

func TestLoadMarkdownIDsFollowEveryExplicitID(t *testing.T) {
	dir := contentDir(t, "blog.json", `[{"id": 1, "title": "One", "slug": "one", "content": "x", "date": "2024-01-01"}]`)
	writeFile(t, filepath.Join(dir, "posts", "a-post.md"), "---\ntitle: A\ndate: \"2024-02-01\"\n---\nA.\n")
	writeFile(t, filepath.Join(dir, "posts", "b-post.md"), "---\ntitle: B\ndate: \"2024-03-01\"\nid: 2\n---\nB.\n")

	store, err := Load(dir)
	require.NoError(t, err)

	a, _ := store.PostBySlug("a-post")
	b, _ := store.PostBySlug("b-post")
	assert.Equal(t, 3, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestPlainTextBodies(t *testing.T) {
	blog := `[{"id": 1, "title": "React", "slug": "react", "date": "2024-01-01",
  "content": "Wrap your tree in <StrictMode> to catch bugs.\n\n1. first\n* star *\n\n\nlast & done"}]`

	store, err := Load(contentDir(t, "blog.json", blog))
	require.NoError(t, err)

	post, ok := store.PostBySlug("react")
	require.True(t, ok)
	assert.Equal(t,
		"<p>Wrap your tree in &lt;StrictMode&gt; to catch bugs.</p>\n"+
			"<p>1. first<br>\n* star *</p>\n"+
			"<p>last &amp; done</p>\n",
		string(post.BodyHTML))
}

func TestPlainTextHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  \n ", ""},
		{"one", "<p>one</p>\n"},
		{"a\r\nb", "<p>a<br>\nb</p>\n"},
		{"a\n  \nb", "<p>a</p>\n<p>b</p>\n"},
		{`"quoted"`, "<p>&#34;quoted&#34;</p>\n"},
	}

	for _, tt := range tests {
		if got := plainTextHTML(tt.in); string(got) != tt.want {
			t.Errorf("plainTextHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInvalidFormat(t *testing.T) {
	blog := `[{"id": 1, "title": "T", "slug": "t", "date": "2024-01-01", "format": "rst"}]`

	_, err := Load(contentDir(t, "blog.json", blog))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oneof")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr string
	}{
		{
			name: "missing portfolio",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, filepath.Join(dir, "blog.json"), blogJSON)
				return dir
			},
			wantErr: "content file not found",
		},
		{
			name: "missing blog",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, filepath.Join(dir, "portfolio.json"), portfolioJSON)
				return dir
			},
			wantErr: "content file not found",
		},
		{
			name: "malformed json",
			setup: func(t *testing.T) string {
				return contentDir(t, "blog.json", "[{")
			},
			wantErr: "failed to parse",
		},
		{
			name: "invalid slug",
			setup: func(t *testing.T) string {
				return contentDir(t, "blog.json", strings.Replace(blogJSON, `"first-post"`, `"First Post!"`, 1))
			},
			wantErr: "slug",
		},
		{
			name: "duplicate slug",
			setup: func(t *testing.T) string {
				return contentDir(t, "blog.json", strings.Replace(blogJSON, `"second-post"`, `"first-post"`, 1))
			},
			wantErr: `duplicate post slug "first-post"`,
		},
		{
			name: "duplicate id",
			setup: func(t *testing.T) string {
				return contentDir(t, "blog.json", strings.Replace(blogJSON, `"id": 2`, `"id": 1`, 1))
			},
			wantErr: "duplicate post id 1",
		},
		{
			name: "non-positive id",
			setup: func(t *testing.T) string {
				return contentDir(t, "blog.json", strings.Replace(blogJSON, `"id": 2`, `"id": 0`, 1))
			},
			wantErr: "ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.setup(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFileIsErrNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostBySlugUnknown(t *testing.T) {
	store, err := New(Portfolio{Profile: Profile{Name: "A", Title: "B"}}, nil)
	require.NoError(t, err)

	_, ok := store.PostBySlug("missing")
	assert.False(t, ok)
	assert.Empty(t, store.Slugs())
}

func TestProfileSameAs(t *testing.T) {
	p := Profile{Contact: Contact{
		GitHub:          "https://github.com/ada",
		LinkedInProfile: "www.linkedin.com/in/ada",
	}}
	assert.Equal(t, []string{"https://www.linkedin.com/in/ada", "https://github.com/ada"}, p.SameAs())
}

func TestStripFrontMatter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no front matter", "no front matter"},
		{"---\ntitle: x\n---\nbody", "body"},
		{"---\ntitle: x\n---\n\nbody\n", "body\n"},
		{"---\nunterminated", "---\nunterminated"},
	}
	for _, tt := range tests {
		if got := stripFrontMatter(tt.in); got != tt.want {
			t.Errorf("stripFrontMatter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
