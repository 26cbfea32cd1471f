package subscription

// Purchase applies a completed (mock) checkout for target to account.
// Paid targets clear any trial end date; HasUsedTrial is never reset.
func Purchase(account *Account, target PlanID) error {
	if account == nil {
		return ErrAccountNotFound
	}
	if !target.Valid() {
		return ErrPlanNotFound
	}

	account.Plan = target
	switch target {
	case PlanFree:
		account.Status = StatusFree
	case PlanLifetime:
		account.Status = StatusLifetime
	default:
		account.Status = StatusActive
	}

	if target.IsPaid() {
		account.TrialEndsAt = nil
	}
	return nil
}

// Cancel marks a paid or trialing account as canceled.
// The stored plan is kept so the UI can offer a renewal.
func Cancel(account *Account) error {
	if account == nil {
		return ErrAccountNotFound
	}
	switch account.Status {
	case StatusActive, StatusTrialing, StatusPastDue:
		account.Status = StatusCanceled
		return nil
	default:
		return ErrInvalidSubscriptionState
	}
}
