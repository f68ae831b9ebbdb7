package core

import "strings"

const (
	RootPath       = "/"
	HomePath       = "/home"
	BlogIndexPath  = "/blog"
	BlogPostPrefix = "/blogs/"
)

type RouteKind int

const (
	RouteUnmatched RouteKind = iota
	RouteHome
	RouteBlogIndex
	RouteBlogPost
)

func (k RouteKind) String() string {
	switch k {
	case RouteHome:
		return "home"
	case RouteBlogIndex:
		return "blog-index"
	case RouteBlogPost:
		return "blog-post"
	default:
		return "unmatched"
	}
}

type RouteMatch struct {
	Kind RouteKind
	Path string
	Slug string
}

// Router resolves request paths to page kinds. Root aliases are extra
// paths that render the home page and are exported to the shell location.
type Router struct {
	roots map[string]struct{}
}

func NewRouter(rootAliases ...string) *Router {
	r := &Router{roots: map[string]struct{}{RootPath: {}}}
	for _, alias := range rootAliases {
		r.roots[NormalizePath(alias)] = struct{}{}
	}
	return r
}

func (r *Router) Match(path string) RouteMatch {
	normalized := NormalizePath(path)

	if r.IsRoot(normalized) || normalized == HomePath {
		return RouteMatch{Kind: RouteHome, Path: normalized}
	}

	if normalized == BlogIndexPath {
		return RouteMatch{Kind: RouteBlogIndex, Path: normalized}
	}

	if slug, ok := strings.CutPrefix(normalized, BlogPostPrefix); ok && slug != "" && !strings.Contains(slug, "/") {
		return RouteMatch{Kind: RouteBlogPost, Path: normalized, Slug: slug}
	}

	return RouteMatch{Kind: RouteUnmatched, Path: normalized}
}

// IsRoot reports whether route is the site root or one of its aliases.
func (r *Router) IsRoot(route string) bool {
	_, ok := r.roots[NormalizePath(route)]
	return ok
}

// BuildRoutes lists the fixed routes followed by one blog post route per
// slug, preserving the order of both inputs.
func BuildRoutes(fixed []string, slugs []string) []string {
	routes := make([]string, 0, len(fixed)+len(slugs))
	routes = append(routes, fixed...)
	for _, slug := range slugs {
		routes = append(routes, BlogPostRoute(slug))
	}
	return routes
}

func BlogPostRoute(slug string) string {
	return BlogPostPrefix + slug
}
