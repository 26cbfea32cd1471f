package subscription

import "errors"

var (
	ErrPlanNotFound             = errors.New("subscription plan not found")
	ErrInvalidSubscriptionState = errors.New("invalid subscription state")

	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountIDNotInContext = errors.New("account ID not found in context")
	ErrMissingAccountID      = errors.New("account ID is required")
	ErrFailedToSaveAccount   = errors.New("failed to save account")

	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
