package subscription

import "time"

// TrialDays is the length of the Pro trial.
const TrialDays = 14

// TrialPlan is the plan granted while trialing.
const TrialPlan = PlanProMonthly

// StartTrial moves account into a Pro trial ending TrialDays after now.
// It returns false without touching the account when the trial was already used.
func StartTrial(account *Account, now time.Time) bool {
	if account == nil || account.HasUsedTrial {
		return false
	}

	endsAt := now.AddDate(0, 0, TrialDays)
	account.Plan = TrialPlan
	account.Status = StatusTrialing
	account.TrialEndsAt = &endsAt
	account.HasUsedTrial = true
	return true
}
