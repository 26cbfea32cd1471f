package api

import (
	"net/http"

	"github.com/lunahq/luna/pkg/logger"
	"github.com/lunahq/luna/pkg/subscription"
)

type checkoutRequest struct {
	Plan     subscription.PlanID          `json:"plan" validate:"required"`
	Interval subscription.BillingInterval `json:"interval" validate:"omitempty,oneof=none monthly annual lifetime"`
	Method   subscription.PaymentMethod   `json:"method" validate:"required,oneof=card crypto"`
}

// check rejects plans outside the catalog and intervals that disagree with the plan.
func (req checkoutRequest) check() error {
	if !req.Plan.Valid() {
		return ErrUnknownPlan
	}
	if req.Interval != "" && req.Interval != subscription.Lookup(req.Plan).Interval {
		return ValidationError{"interval": {"does not match the plan's billing interval"}}
	}
	return nil
}

// priceQuote binds the body and prices it against the live BTC rate when paying with crypto.
func (h *handlers) priceQuote(r *http.Request) (checkoutRequest, quoteView, error) {
	var req checkoutRequest
	if err := h.bind(r, &req); err != nil {
		return req, quoteView{}, err
	}
	if err := req.check(); err != nil {
		return req, quoteView{}, err
	}

	id, err := subscription.AccountIDFromContext(r.Context())
	if err != nil {
		return req, quoteView{}, toHTTP(err)
	}

	var btc float64
	var btcLive bool
	if req.Method == subscription.PaymentCrypto {
		price := h.prices.BTCPrice(r.Context())
		btc, btcLive = price.Value, !price.Fallback()
	}

	q, err := h.subs.Quote(r.Context(), id, req.Plan, req.Method, btc)
	if err != nil {
		return req, quoteView{}, toHTTP(err)
	}

	v := newQuoteView(q)
	if req.Method == subscription.PaymentCrypto {
		v.BTCPrice, v.BTCLive = btc, btcLive
	}
	return req, v, nil
}

func (h *handlers) quote(w http.ResponseWriter, r *http.Request) {
	_, v, err := h.priceQuote(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, r, v)
}

type checkoutResult struct {
	Quote        quoteView        `json:"quote"`
	Subscription subscriptionView `json:"subscription"`
}

// checkout applies the plan immediately. Nothing is charged.
func (h *handlers) checkout(w http.ResponseWriter, r *http.Request) {
	req, v, err := h.priceQuote(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	if v.Change == subscription.ChangeCurrent {
		fail(w, r, ErrAlreadyOnPlan)
		return
	}

	id, _ := subscription.AccountIDFromContext(r.Context())
	if _, err := h.subs.ChangePlan(r.Context(), id, req.Plan); err != nil {
		h.log.ErrorContext(r.Context(), "checkout", logger.AccountID(id), logger.Plan(string(req.Plan)), logger.Error(err))
		fail(w, r, toHTTP(err))
		return
	}

	sub, err := h.currentSubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}
	ok(w, r, checkoutResult{Quote: v, Subscription: newSubscriptionView(sub)})
}
