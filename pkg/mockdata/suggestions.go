package mockdata

import (
	"slices"
	"sync"
)

// SuggestionAction is the user's decision on a suggestion.
type SuggestionAction string

const (
	SuggestionAccept  SuggestionAction = "accept"
	SuggestionDismiss SuggestionAction = "dismiss"
)

// Message is the confirmation shown after the action.
func (a SuggestionAction) Message() string {
	switch a {
	case SuggestionAccept:
		return "Your schedule has been optimized."
	case SuggestionDismiss:
		return "We won't show this again."
	default:
		return ""
	}
}

// SuggestionBoard holds the suggestions still waiting for a decision.
// Accepted and dismissed suggestions are gone until the process restarts.
// A SuggestionBoard is safe for concurrent use.
type SuggestionBoard struct {
	mu   sync.Mutex
	open []Suggestion
}

func NewSuggestionBoard(seed ...Suggestion) *SuggestionBoard {
	return &SuggestionBoard{open: slices.Clone(seed)}
}

// List returns the open suggestions in their original order. Never nil.
func (b *SuggestionBoard) List() []Suggestion {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Suggestion{}, b.open...)
}

// Resolve applies action to the suggestion with id and removes it from the board.
func (b *SuggestionBoard) Resolve(id string, action SuggestionAction) (Suggestion, error) {
	if action != SuggestionAccept && action != SuggestionDismiss {
		return Suggestion{}, ErrUnknownSuggestionAction
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.open, func(s Suggestion) bool { return s.ID == id })
	if i < 0 {
		return Suggestion{}, ErrSuggestionNotFound
	}
	s := b.open[i]
	b.open = slices.Delete(b.open, i, i+1)
	return s, nil
}
