package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lunahq/luna/pkg/mockdata"
)

func (h *handlers) listSuggestions(w http.ResponseWriter, r *http.Request) {
	ok(w, r, h.suggestions.List())
}

// resolveSuggestion removes the suggestion from the dashboard. Accepting
// does not move any event.
func (h *handlers) resolveSuggestion(action mockdata.SuggestionAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := h.suggestions.Resolve(chi.URLParam(r, "id"), action)
		if err != nil {
			fail(w, r, toHTTP(err))
			return
		}
		done(w, r, action.Message(), suggestionResult{
			Suggestion: s,
			Action:     action,
			Remaining:  h.suggestions.List(),
		})
	}
}
