package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/dashboard"
	"github.com/lunahq/luna/pkg/external"
	"github.com/lunahq/luna/pkg/httpserver"
	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/requestid"
	"github.com/lunahq/luna/pkg/subscription"
)

// DashboardLoader builds the home screen for an account.
type DashboardLoader interface {
	Load(ctx context.Context, account subscription.Account) dashboard.Dashboard
}

// PriceSource supplies the BTC/USD rate for crypto checkout.
type PriceSource interface {
	BTCPrice(ctx context.Context) external.Result[float64]
}

// MealSource suggests a recipe for a cycle phase.
type MealSource interface {
	Meal(ctx context.Context, phase bioinsight.Phase) external.Result[external.Meal]
}

// SuggestionStore keeps the dashboard suggestions that are still open.
type SuggestionStore interface {
	List() []mockdata.Suggestion
	Resolve(id string, action mockdata.SuggestionAction) (mockdata.Suggestion, error)
}

// FamilyCircle holds the linked family members and pending invitations.
type FamilyCircle interface {
	Members() []mockdata.FamilyMember
	Invitations() []mockdata.Invitation
	Nudge(memberID string, t mockdata.AlertType, at time.Time) (mockdata.Nudge, error)
	Invite(email string, seats int, at time.Time) (mockdata.Invitation, error)
}

// RouterOptions wires the API to its services. Subscriptions, Dashboard and
// Prices are required; the rest is optional. Suggestions and Family default to
// fresh in-memory fixtures, so pass the same SuggestionStore to the dashboard
// loader for resolved suggestions to disappear from it.
type RouterOptions struct {
	Subscriptions subscription.Service
	Dashboard     DashboardLoader
	Prices        PriceSource
	Meals         MealSource // optional, enables /api/nutrition
	Suggestions   SuggestionStore
	Family        FamilyCircle

	// AccountID is the account every request acts on. There is no authentication.
	AccountID uuid.UUID

	Logger      *slog.Logger
	Metrics     http.Handler // mounted at /metrics when set
	ReadyChecks []httpserver.Check
	Now         func() time.Time
}

type handlers struct {
	subs        subscription.Service
	loader      DashboardLoader
	prices      PriceSource
	meals       MealSource
	suggestions SuggestionStore
	circle      FamilyCircle
	validate    *validator.Validate
	log         *slog.Logger
	now         func() time.Time
}

// Router builds the HTTP surface:
//
//	GET  /health/live, /health/ready, /metrics
//	GET  /api/plans, /api/plans/{id}/change
//	GET  /api/subscription, /api/features/{key}
//	POST /api/subscription/trial, /api/subscription/cancel
//	POST /api/checkout/quote, /api/checkout
//	GET  /api/dashboard, /api/nutrition, /api/suggestions
//	POST /api/suggestions/{id}/accept, /api/suggestions/{id}/dismiss
//	GET  /api/family, /api/family/alerts
//	POST /api/family/{id}/nudge, /api/family/invite
//	GET  /api/billing/history
//
// Panics if a required option is missing.
func Router(opts RouterOptions) chi.Router {
	if opts.Subscriptions == nil || opts.Dashboard == nil || opts.Prices == nil {
		panic("api: Subscriptions, Dashboard and Prices are required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Suggestions == nil {
		opts.Suggestions = mockdata.NewSuggestionBoard(mockdata.Suggestions()...)
	}
	if opts.Family == nil {
		opts.Family = mockdata.NewFamilyCircle(mockdata.FamilyMembers(opts.Now())...)
	}

	h := &handlers{
		subs:        opts.Subscriptions,
		loader:      opts.Dashboard,
		prices:      opts.Prices,
		meals:       opts.Meals,
		suggestions: opts.Suggestions,
		circle:      opts.Family,
		validate:    newValidator(),
		log:         opts.Logger,
		now:         opts.Now,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(opts.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { fail(w, r, ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { fail(w, r, ErrMethodNotAllowed) })

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(opts.Logger, opts.ReadyChecks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(withAccount(opts.AccountID))

		api.Get("/plans", h.listPlans)
		api.Get("/plans/{id}/change", h.planChange)

		api.Get("/subscription", h.getSubscription)
		api.Post("/subscription/trial", h.startTrial)
		api.Post("/subscription/cancel", h.cancel)
		api.Get("/features/{key}", h.feature)

		api.Post("/checkout/quote", h.quote)
		api.Post("/checkout", h.checkout)

		api.Get("/dashboard", h.dashboard)
		if opts.Meals != nil {
			api.Get("/nutrition", h.nutrition)
		}

		api.Get("/suggestions", h.listSuggestions)
		api.Post("/suggestions/{id}/accept", h.resolveSuggestion(mockdata.SuggestionAccept))
		api.Post("/suggestions/{id}/dismiss", h.resolveSuggestion(mockdata.SuggestionDismiss))

		api.Route("/family", func(fam chi.Router) {
			fam.Get("/", h.family)
			fam.Get("/alerts", h.familyAlerts)
			fam.Post("/invite", h.invite)
			fam.Post("/{id}/nudge", h.nudge)
		})

		api.Get("/billing/history", h.billingHistory)
	})

	return r
}
