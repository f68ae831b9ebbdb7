package core

import (
	"fmt"
	"strings"
)

type CrawlerPolicy struct {
	// Comment is written as a "# ..." line above the group.
	Comment    string
	UserAgent  string
	CrawlDelay int
}

var DefaultCrawlers = []CrawlerPolicy{
	{UserAgent: "Googlebot", CrawlDelay: 1},
	{UserAgent: "Bingbot", CrawlDelay: 1},
	{UserAgent: "Slurp", CrawlDelay: 1},
	{UserAgent: "DuckDuckBot", CrawlDelay: 1},
	{UserAgent: "Baiduspider", CrawlDelay: 1},
	{UserAgent: "Yandexbot", CrawlDelay: 1},
	{UserAgent: "Twitterbot"},
	{UserAgent: "facebookexternalhit"},
	{UserAgent: "LinkedInBot"},
	{UserAgent: "WhatsApp"},
	{UserAgent: "TelegramBot"},
	{Comment: "AI Search Engines", UserAgent: "ChatGPT-User"},
	{UserAgent: "GPTBot"},
	{UserAgent: "Claude-Web"},
	{UserAgent: "Google-Extended"},
	{UserAgent: "anthropic-ai"},
	{UserAgent: "PerplexityBot"},
	{Comment: "Common crawlers", UserAgent: "*", CrawlDelay: 2},
}

// RenderRobots writes an allow-all group per crawler followed by the
// sitemap pointer.
func RenderRobots(crawlers []CrawlerPolicy, sitemapURL string) string {
	var b strings.Builder
	for _, c := range crawlers {
		if c.Comment != "" {
			fmt.Fprintf(&b, "# %s\n", c.Comment)
		}
		fmt.Fprintf(&b, "User-agent: %s\n", c.UserAgent)
		b.WriteString("Allow: /\n")
		if c.CrawlDelay > 0 {
			fmt.Fprintf(&b, "Crawl-delay: %d\n", c.CrawlDelay)
		}
		b.WriteString("\n")
	}
	b.WriteString("# Sitemap location\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", sitemapURL)
	return b.String()
}
