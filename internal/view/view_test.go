package view

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func testStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.New(content.Portfolio{
		Profile: content.Profile{
			Name:            "Ada Example",
			Title:           "Staff Engineer",
			Location:        "Lisbon, Portugal",
			Headline:        "Building calm software.",
			YearsExperience: "10+",
			Contact: content.Contact{
				GitHub:          "https://github.com/ada",
				LinkedInProfile: "www.linkedin.com/in/ada",
				Email:           "ada@example.com",
			},
		},
		Experience: []content.ExperienceEntry{
			{Position: "Staff Engineer", Company: "Acme", Duration: "2020 - Present", EmploymentType: "Full-time", Description: "Platform work."},
			{Position: "Engineer", Company: "Initech", Duration: "2015 - 2020", Location: "Remote", EmploymentType: "Contract", Description: "APIs."},
		},
		Projects:  []content.ProjectEntry{{Title: "Folio"}, {Title: "Other"}, {Title: "Third"}},
		AllSkills: []string{"Go", "TypeScript"},
	}, []content.BlogPost{
		{ID: 1, Slug: "hello-world", Title: "Hello <World>", Excerpt: "Intro", Summary: "Sum", Content: "Some **bold** text.", Format: content.FormatMarkdown, Date: "2024-01-02", Author: "Ada", Tags: []string{"go", "go"}, ReadTime: "2 min read"},
		{ID: 2, Slug: "second", Title: "Second", Content: "Body", Date: "2024-02-02", Author: "Ada"},
	})
	require.NoError(t, err)
	return store
}

func TestHome(t *testing.T) {
	html, err := Home(testStore(t))
	require.NoError(t, err)

	out := string(html)
	for _, id := range []string{`id="home"`, `id="about"`, `id="experience"`, `id="skills"`, `id="contact"`} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Hi, I'm <span class=\"highlight\">Ada Example</span>")
	assert.Contains(t, out, `href="https://www.linkedin.com/in/ada"`)
	assert.Contains(t, out, `data-scroll-to="contact"`)
	assert.Contains(t, out, "<span>Remote</span>")
	assert.Less(t, strings.Index(out, "Acme"), strings.Index(out, "Initech"))

	snaps.MatchSnapshot(t, out)
}

func TestSummaryStats(t *testing.T) {
	stats := summaryStats(testStore(t))
	assert.Equal(t, []stat{
		{Value: "10+", Label: "Years Experience"},
		{Value: "2", Label: "Key Roles"},
		{Value: "3", Label: "Major Projects"},
		{Value: "2+", Label: "Technologies"},
	}, stats)
}

func TestBlogIndex(t *testing.T) {
	html, err := BlogIndex(testStore(t))
	require.NoError(t, err)

	out := string(html)
	assert.Equal(t, 2, strings.Count(out, `<article class="blog-card">`))
	assert.Contains(t, out, `href="/blogs/hello-world"`)
	assert.Contains(t, out, "Hello &lt;World&gt;")
	assert.Equal(t, 2, strings.Count(out, `<li class="tag">go</li>`))
	assert.Less(t, strings.Index(out, "hello-world"), strings.Index(out, "/blogs/second"))
}

func TestBlogPost(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		contains []string
		excludes []string
	}{
		{
			name: "known slug",
			slug: "hello-world",
			contains: []string{
				"2024-01-02 &bull; 2 min read",
				"Hello &lt;World&gt;",
				"By Ada",
				"<strong>bold</strong>",
				`href="/blog"`,
			},
			excludes: []string{"not found"},
		},
		{
			name:     "unknown slug",
			slug:     "does-not-exist",
			contains: []string{"Blog post <span class=\"highlight\">not found</span>", `href="/blog"`},
			excludes: []string{"Summary"},
		},
	}

	store := testStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := BlogPost(store, tt.slug)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, string(html), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, string(html), unwanted)
			}
		})
	}
}

func TestRendererDispatch(t *testing.T) {
	r := NewRenderer(testStore(t))

	tests := []struct {
		match core.RouteMatch
		want  string
	}{
		{core.RouteMatch{Kind: core.RouteHome, Path: "/"}, `id="experience"`},
		{core.RouteMatch{Kind: core.RouteBlogIndex, Path: "/blog"}, `class="blog-grid"`},
		{core.RouteMatch{Kind: core.RouteBlogPost, Path: "/blogs/second", Slug: "second"}, "<p>Body</p>"},
		{core.RouteMatch{Kind: core.RouteUnmatched, Path: "/nope"}, "Oops! Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.match.Kind.String(), func(t *testing.T) {
			html, err := r.Render(tt.match)
			require.NoError(t, err)
			assert.Contains(t, string(html), tt.want)
		})
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ada Example":           "AE",
		"ada":                   "A",
		"":                      "",
		"grace  brewster hopper": "GBH",
	}
	for in, want := range tests {
		if got := initials(in); got != want {
			t.Errorf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}
