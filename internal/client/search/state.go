package search

import "github.com/dmitrijs2005/techblog/internal/client/models"

type Phase int

const (
	// PhaseIdle: nothing requested yet, or results were cleared.
	PhaseIdle Phase = iota
	// PhaseDebouncing: an input changed and a request is scheduled.
	PhaseDebouncing
	PhaseResolving
	PhaseResolved
	// PhaseFailed: the last request failed; results are empty.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseResolving:
		return "resolving"
	case PhaseResolved:
		return "resolved"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is what a list view renders.
type State struct {
	Query   Query
	Phase   Phase
	Results models.PostList
	Err     error
	// Searched is true once any request has settled for the current
	// non-blank query.
	Searched bool
	// Version increases with every notified change; a higher Version is
	// always the newer state.
	Version uint64
}
