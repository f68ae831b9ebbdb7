package core

// RenderedPage is the markup produced for one route, before it is spliced
// into the shell.
type RenderedPage struct {
	Body  string
	Match RouteMatch
}
