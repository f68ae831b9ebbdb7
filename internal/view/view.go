// Package view renders page fragments from the content store. Every
// function is a pure function of the store and route parameters.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type navLink struct {
	Name    string
	Href    string
	Section string
}

var navLinks = []navLink{
	{Name: "Home", Href: "/home#home", Section: "home"},
	{Name: "About", Href: "/home#about", Section: "about"},
	{Name: "Experience", Href: "/home#experience", Section: "experience"},
	{Name: "Skills", Href: "/home#skills", Section: "skills"},
	{Name: "Contact", Href: "/home#contact", Section: "contact"},
	{Name: "Blog", Href: core.BlogIndexPath},
}

type navData struct {
	Initials string
	Links    []navLink
}

type footerLink struct {
	Label string
	Href  string
}

type footerData struct {
	Name  string
	Links []footerLink
}

type stat struct {
	Value string
	Label string
}

type homeData struct {
	Nav        navData
	Footer     footerData
	Profile    content.Profile
	Experience []content.ExperienceEntry
	Stats      []stat
	Skills     []string
}

type blogIndexData struct {
	Nav    navData
	Footer footerData
	Posts  []content.BlogPost
}

type blogPostData struct {
	Nav    navData
	Footer footerData
	Post   *content.BlogPost
}

type notFoundData struct {
	Nav    navData
	Footer footerData
}

// Renderer binds the view functions to a content store.
type Renderer struct {
	store *content.Store
}

func NewRenderer(store *content.Store) *Renderer {
	return &Renderer{store: store}
}

// Render dispatches a matched route to its view.
func (r *Renderer) Render(match core.RouteMatch) (template.HTML, error) {
	switch match.Kind {
	case core.RouteHome:
		return Home(r.store)
	case core.RouteBlogIndex:
		return BlogIndex(r.store)
	case core.RouteBlogPost:
		return BlogPost(r.store, match.Slug)
	default:
		return NotFound(r.store)
	}
}

func Home(store *content.Store) (template.HTML, error) {
	profile := store.Profile()
	return execute("home", homeData{
		Nav:        nav(profile),
		Footer:     footer(profile),
		Profile:    profile,
		Experience: store.Experience(),
		Stats:      summaryStats(store),
		Skills:     store.Skills(),
	})
}

func BlogIndex(store *content.Store) (template.HTML, error) {
	profile := store.Profile()
	return execute("blog-index", blogIndexData{
		Nav:    nav(profile),
		Footer: footer(profile),
		Posts:  store.Posts(),
	})
}

// BlogPost renders the post with the given slug, or the "not found" state
// when no post has that slug.
func BlogPost(store *content.Store, slug string) (template.HTML, error) {
	profile := store.Profile()
	data := blogPostData{Nav: nav(profile), Footer: footer(profile)}
	if post, ok := store.PostBySlug(slug); ok {
		data.Post = &post
	}
	return execute("blog-post", data)
}

func NotFound(store *content.Store) (template.HTML, error) {
	profile := store.Profile()
	return execute("not-found", notFoundData{Nav: nav(profile), Footer: footer(profile)})
}

// summaryStats are the summary figures shown under the experience timeline.
func summaryStats(store *content.Store) []stat {
	var stats []stat
	if years := store.Profile().YearsExperience; years != "" {
		stats = append(stats, stat{Value: years, Label: "Years Experience"})
	}
	return append(stats,
		stat{Value: strconv.Itoa(len(store.Experience())), Label: "Key Roles"},
		stat{Value: strconv.Itoa(len(store.Projects())), Label: "Major Projects"},
		stat{Value: strconv.Itoa(len(store.Skills())) + "+", Label: "Technologies"},
	)
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func nav(profile content.Profile) navData {
	return navData{Initials: initials(profile.Name), Links: navLinks}
}

func footer(profile content.Profile) footerData {
	data := footerData{Name: profile.Name}
	if profile.Contact.GitHub != "" {
		data.Links = append(data.Links, footerLink{Label: "GitHub", Href: profile.Contact.GitHub})
	}
	if profile.Contact.LinkedInProfile != "" {
		data.Links = append(data.Links, footerLink{Label: "LinkedIn", Href: "https://" + profile.Contact.LinkedInProfile})
	}
	if profile.Contact.Twitter != "" {
		data.Links = append(data.Links, footerLink{Label: "Twitter", Href: profile.Contact.Twitter})
	}
	return data
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(b.String())
}
