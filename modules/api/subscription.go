package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/subscription"
)

// currentSubscription resolves the effective subscription of the request's account.
func (h *handlers) currentSubscription(r *http.Request) (subscription.EffectiveSubscription, error) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		return subscription.EffectiveSubscription{}, toHTTP(err)
	}
	sub, err := h.subs.GetSubscription(r.Context(), id)
	if err != nil {
		return subscription.EffectiveSubscription{}, toHTTP(err)
	}
	return sub, nil
}

func (h *handlers) listPlans(w http.ResponseWriter, r *http.Request) {
	sub, err := h.currentSubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	plans := subscription.Plans()
	views := make([]planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, newPlanView(p, sub.Plan))
	}
	ok(w, r, views)
}

func (h *handlers) planChange(w http.ResponseWriter, r *http.Request) {
	target := subscription.PlanID(chi.URLParam(r, "id"))
	if !target.Valid() {
		fail(w, r, ErrUnknownPlan)
		return
	}
	sub, err := h.currentSubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	kind := subscription.Classify(sub.Plan, target)
	cmp := subscription.ComparePlans(subscription.Lookup(sub.Plan), subscription.Lookup(target))
	ok(w, r, changeView{
		Current:      sub.Plan,
		Target:       target,
		Change:       kind,
		ActionLabel:  kind.ActionLabel(),
		NewFeatures:  cmp.NewFeatures,
		LostFeatures: cmp.LostFeatures,
		Seats:        rangeView{From: cmp.SeatChange.From, To: cmp.SeatChange.To},
		Price:        rangeView{From: cmp.PriceChange.From, To: cmp.PriceChange.To},
		HasLosses:    cmp.HasLosses(),
	})
}

func (h *handlers) getSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.currentSubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, r, newSubscriptionView(sub))
}

type featureView struct {
	Feature subscription.FeatureKey `json:"feature"`
	Enabled bool                    `json:"enabled"`
}

// feature answers false for unknown keys rather than 404, matching HasFeature.
func (h *handlers) feature(w http.ResponseWriter, r *http.Request) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}
	key := subscription.FeatureKey(chi.URLParam(r, "key"))
	ok(w, r, featureView{Feature: key, Enabled: h.subs.HasFeature(r.Context(), id, key)})
}

func (h *handlers) startTrial(w http.ResponseWriter, r *http.Request) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}

	started, err := h.subs.StartTrial(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "start trial", logger.AccountID(id), logger.Error(err))
		fail(w, r, toHTTP(err))
		return
	}
	if !started {
		fail(w, r, ErrTrialNotAvailable)
		return
	}
	h.getSubscription(w, r)
}

func (h *handlers) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}
	if err := h.subs.Cancel(r.Context(), id); err != nil {
		fail(w, r, toHTTP(err))
		return
	}
	h.getSubscription(w, r)
}
