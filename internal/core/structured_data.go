package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

const SchemaContext = "https://schema.org"

type Person struct {
	Context      string        `json:"@context,omitempty"`
	Type         string        `json:"@type"`
	Name         string        `json:"name"`
	JobTitle     string        `json:"jobTitle,omitempty"`
	Description  string        `json:"description,omitempty"`
	URL          string        `json:"url,omitempty"`
	Image        string        `json:"image,omitempty"`
	SameAs       []string      `json:"sameAs,omitempty"`
	KnowsAbout   []string      `json:"knowsAbout,omitempty"`
	ContactPoint *ContactPoint `json:"contactPoint,omitempty"`
}

type ContactPoint struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone,omitempty"`
	ContactType string `json:"contactType"`
	Email       string `json:"email,omitempty"`
}

type WebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type BlogPosting struct {
	Context          string   `json:"@context"`
	Type             string   `json:"@type"`
	Headline         string   `json:"headline"`
	Description      string   `json:"description"`
	Image            string   `json:"image,omitempty"`
	Author           Person   `json:"author"`
	Publisher        Person   `json:"publisher"`
	DatePublished    string   `json:"datePublished"`
	DateModified     string   `json:"dateModified"`
	MainEntityOfPage WebPage  `json:"mainEntityOfPage"`
	Keywords         string   `json:"keywords"`
	ArticleSection   string   `json:"articleSection"`
	WordCount        int      `json:"wordCount"`
	Genre            []string `json:"genre"`
}

type CollectionPage struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Author      Person   `json:"author"`
	MainEntity  ItemList `json:"mainEntity"`
}

type ItemList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type        string `json:"@type"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// StructuredDataScript serializes v into a JSON-LD script tag. The encoder
// escapes <, > and & so content can never close the script element early.
func StructuredDataScript(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	enc.SetIndent("    ", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}

	body := strings.TrimRight(buf.String(), "\n")
	return "  <script type=\"application/ld+json\">\n    " + body + "\n  </script>", nil
}
