package api

import (
	"errors"
	"net/http"

	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

var (
	ErrBadRequest        = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnknownPlan       = HTTPError{Code: http.StatusNotFound, Key: "plan_not_found"}
	ErrAccountNotFound   = HTTPError{Code: http.StatusNotFound, Key: "account_not_found"}
	ErrUnauthorized      = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrTrialNotAvailable = HTTPError{Code: http.StatusConflict, Key: "trial_not_available", Message: "The free trial has already been used"}
	ErrAlreadyOnPlan     = HTTPError{Code: http.StatusConflict, Key: "already_on_plan", Message: "The account is already on this plan"}
	ErrInvalidState      = HTTPError{Code: http.StatusConflict, Key: "invalid_subscription_state", Message: "The subscription cannot be changed in its current state"}
	ErrFamilyRequired    = HTTPError{Code: http.StatusPaymentRequired, Key: "family_plan_required", Message: "Family features require a family plan"}
	ErrSuggestionGone    = HTTPError{Code: http.StatusNotFound, Key: "suggestion_not_found", Message: "The suggestion was already handled or never existed"}
	ErrMemberNotFound    = HTTPError{Code: http.StatusNotFound, Key: "member_not_found"}
	ErrFamilyFull        = HTTPError{Code: http.StatusConflict, Key: "family_full", Message: "Every family seat is taken"}
	ErrAlreadyInvited    = HTTPError{Code: http.StatusConflict, Key: "already_invited", Message: "This email already has a pending invitation"}
	ErrNotFound          = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed  = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrInternal          = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)

// toHTTP translates subscription and fixture errors to their HTTP form.
// Unknown errors are returned unchanged and render as 500.
func toHTTP(err error) error {
	switch {
	case errors.Is(err, subscription.ErrPlanNotFound):
		return ErrUnknownPlan
	case errors.Is(err, subscription.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, subscription.ErrAccountIDNotInContext):
		return ErrUnauthorized
	case errors.Is(err, subscription.ErrInvalidSubscriptionState):
		return ErrInvalidState
	case errors.Is(err, subscription.ErrInvalidPaymentMethod):
		return ValidationError{"method": {"must be card or crypto"}}
	case errors.Is(err, mockdata.ErrSuggestionNotFound), errors.Is(err, mockdata.ErrUnknownSuggestionAction):
		return ErrSuggestionGone
	case errors.Is(err, mockdata.ErrMemberNotFound):
		return ErrMemberNotFound
	case errors.Is(err, mockdata.ErrUnknownAlert):
		return ValidationError{"type": {"is not a known alert"}}
	case errors.Is(err, mockdata.ErrInvalidEmail):
		return ValidationError{"email": {"must be a valid email address"}}
	case errors.Is(err, mockdata.ErrFamilyCircleFull):
		return ErrFamilyFull
	case errors.Is(err, mockdata.ErrAlreadyInvited):
		return ErrAlreadyInvited
	default:
		return err
	}
}
