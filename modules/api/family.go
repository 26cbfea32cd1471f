package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

// familySubscription resolves the subscription and rejects accounts without family features.
func (h *handlers) familySubscription(r *http.Request) (subscription.EffectiveSubscription, error) {
	sub, err := h.currentSubscription(r)
	if err != nil {
		return sub, err
	}
	if !sub.Can(subscription.FeatureFamilyFeatures) {
		return sub, ErrFamilyRequired
	}
	return sub, nil
}

func (h *handlers) family(w http.ResponseWriter, r *http.Request) {
	sub, err := h.familySubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	limit := sub.Features.MaxFamilyMembers
	members := h.circle.Members()
	if len(members) > limit {
		members = members[:limit]
	}
	invites := h.circle.Invitations()
	ok(w, r, familyView{
		Plan:        sub.Plan,
		MaxMembers:  limit,
		Members:     members,
		Invitations: invites,
		SeatsLeft:   max(limit-len(members)-len(invites), 0),
		Alerts:      mockdata.Alerts(),
	})
}

func (h *handlers) familyAlerts(w http.ResponseWriter, r *http.Request) {
	ok(w, r, mockdata.Alerts())
}

type nudgeRequest struct {
	Type mockdata.AlertType `json:"type" validate:"required,oneof=JUST_SAYING_HI HAVE_GOOD_DAY"`
}

// nudge sends a quick alert to a linked member. Nothing is delivered outside the process.
func (h *handlers) nudge(w http.ResponseWriter, r *http.Request) {
	if _, err := h.familySubscription(r); err != nil {
		fail(w, r, err)
		return
	}

	var req nudgeRequest
	if err := h.bind(r, &req); err != nil {
		fail(w, r, err)
		return
	}

	n, err := h.circle.Nudge(chi.URLParam(r, "id"), req.Type, h.now())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}

	id, _ := subscription.AccountIDFromContext(r.Context())
	h.log.InfoContext(r.Context(), "family nudge sent",
		logger.AccountID(id),
		logger.Event(string(n.Alert.Type)),
		slog.String("member_id", n.MemberID),
	)
	done(w, r, n.Message(), n)
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// invite records a pending invitation while the plan has a free seat.
func (h *handlers) invite(w http.ResponseWriter, r *http.Request) {
	sub, err := h.familySubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	var req inviteRequest
	if err := h.bind(r, &req); err != nil {
		fail(w, r, err)
		return
	}

	inv, err := h.circle.Invite(req.Email, sub.Features.MaxFamilyMembers, h.now())
	if err != nil {
		fail(w, r, toHTTP(err))
		return
	}

	id, _ := subscription.AccountIDFromContext(r.Context())
	h.log.InfoContext(r.Context(), "family invitation sent", logger.AccountID(id), logger.Plan(string(sub.Plan)))
	created(w, r, "Invitation sent to "+inv.Email+".", inv)
}
