package core

import "net/http"

type PageAction int

const (
	ActionRenderPage PageAction = iota
	ActionRenderNotFound
)

type PageDecision struct {
	Action PageAction
	Status int
}

// DecidePageAction maps a route match to the page to render and the status
// to answer with. A blog post route with an unknown slug still renders the
// post page: its not found state is a display state, not an HTTP error.
func DecidePageAction(match RouteMatch) PageDecision {
	if match.Kind == RouteUnmatched {
		return PageDecision{Action: ActionRenderNotFound, Status: http.StatusNotFound}
	}
	return PageDecision{Action: ActionRenderPage, Status: http.StatusOK}
}
