package usecase

import (
	"strings"

	"github.com/3-lines-studio/folio/internal/content"
	"github.com/3-lines-studio/folio/internal/core"
)

const (
	blogDescription    = "Thoughts, tutorials, and insights on web development and technology"
	blogArticleSection = "Technology"
)

// structuredData picks the JSON-LD document for a route: a BlogPosting for
// known posts, a CollectionPage for the blog index and a Person otherwise.
func structuredData(store *content.Store, baseURL, route string, post *content.BlogPost) any {
	base := strings.TrimRight(baseURL, "/")
	pageURL := base + route
	profile := store.Profile()

	author := core.Person{Type: "Person", Name: profile.Name, URL: base + core.RootPath}

	switch {
	case post != nil:
		postAuthor := author
		if post.Author != "" {
			postAuthor.Name = post.Author
		}
		return core.BlogPosting{
			Context:          core.SchemaContext,
			Type:             "BlogPosting",
			Headline:         post.Title,
			Description:      post.Excerpt,
			Image:            absoluteURL(base, profile.Image),
			Author:           postAuthor,
			Publisher:        core.Person{Type: "Person", Name: profile.Name},
			DatePublished:    post.Date,
			DateModified:     post.Date,
			MainEntityOfPage: core.WebPage{Type: "WebPage", ID: pageURL},
			Keywords:         strings.Join(post.Tags, ", "),
			ArticleSection:   blogArticleSection,
			WordCount:        post.WordCount(),
			Genre:            nonNil(post.Tags),
		}

	case route == core.BlogIndexPath:
		items := make([]core.ListItem, 0, len(store.Posts()))
		for i, p := range store.Posts() {
			items = append(items, core.ListItem{
				Type:        "BlogPosting",
				Position:    i + 1,
				Name:        p.Title,
				URL:         base + core.BlogPostRoute(p.Slug),
				Description: p.Excerpt,
			})
		}
		return core.CollectionPage{
			Context:     core.SchemaContext,
			Type:        "CollectionPage",
			Name:        "Blog | " + profile.Name,
			Description: blogDescription,
			URL:         pageURL,
			Author:      author,
			MainEntity:  core.ItemList{Type: "ItemList", ItemListElement: items},
		}

	default:
		person := core.Person{
			Context:     core.SchemaContext,
			Type:        "Person",
			Name:        profile.Name,
			JobTitle:    profile.JobTitle,
			Description: profile.Headline,
			URL:         pageURL,
			Image:       absoluteURL(base, profile.Image),
			SameAs:      profile.SameAs(),
			KnowsAbout:  store.Skills(),
		}
		if c := profile.Contact; c.Email != "" || c.Phone != "" {
			person.ContactPoint = &core.ContactPoint{
				Type:        "ContactPoint",
				Telephone:   c.Phone,
				ContactType: "consulting",
				Email:       c.Email,
			}
		}
		return person
	}
}

func absoluteURL(base, path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
