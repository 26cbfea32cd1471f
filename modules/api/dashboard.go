package api

import (
	"net/http"

	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/external"
	"github.com/lunahq/luna/pkg/subscription"
)

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}
	acc, err := h.subs.GetAccount(r.Context(), id)
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}

	d := h.loader.Load(r.Context(), acc)
	okWithMeta(w, r, newDashboardView(d), map[string]any{"degraded": d.Degraded()})
}

// nutrition pairs the phase's nutrition focus with a recipe from the matching meal category.
func (h *handlers) nutrition(w http.ResponseWriter, r *http.Request) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}
	acc, err := h.subs.GetAccount(r.Context(), id)
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}

	phase := acc.Phase.OrDefault()
	meal := h.meals.Meal(r.Context(), phase)
	okWithMeta(w, r, nutritionView{
		Phase:     phase,
		Nutrition: bioinsight.Generate(phase, external.FallbackWeather).Nutrition,
		Meal:      newSlotView(meal),
	}, map[string]any{"degraded": meal.Fallback()})
}
