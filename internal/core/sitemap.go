package core

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"
)

const (
	SitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	SitemapChangeFreq = "weekly"
	rootPriority      = "1.0"
	defaultPriority   = "0.8"
)

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap creates one entry per route, in order. Every entry is
// stamped with the generation date rather than a per-content date.
func BuildSitemap(baseURL string, routes []string, generatedAt time.Time) URLSet {
	base := strings.TrimRight(baseURL, "/")
	lastMod := generatedAt.Format(time.DateOnly)

	set := URLSet{
		Xmlns: SitemapNamespace,
		URLs:  make([]SitemapURL, 0, len(routes)),
	}
	for _, route := range routes {
		priority := defaultPriority
		if route == RootPath {
			priority = rootPriority
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        base + route,
			LastMod:    lastMod,
			ChangeFreq: SitemapChangeFreq,
			Priority:   priority,
		})
	}
	return set
}

func RenderSitemap(set URLSet) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	buf.WriteString("\n")
	return buf.Bytes(), nil
}
