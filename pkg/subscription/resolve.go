package subscription

import (
	"math"
	"time"
)

// EffectiveSubscription is the read-only view of an account at a point in time.
// It is recomputed on every read and never stored.
type EffectiveSubscription struct {
	Plan               PlanID
	PlanName           string
	Status             Status
	Features           Features
	IsPro              bool
	IsFamilyPlan       bool
	IsActive           bool
	IsTrial            bool
	TrialEndsAt        *time.Time
	TrialDaysRemaining *int // nil unless the effective status is TRIALING
	HasUsedTrial       bool
	CanStartTrial      bool
}

// Resolve derives the effective subscription of account at now.
// A trial whose end date has passed collapses to EXPIRED on the free plan;
// the account itself is left untouched.
func Resolve(account Account, now time.Time) EffectiveSubscription {
	status := account.Status
	plan := account.Plan

	if account.IsTrialing() && account.IsTrialExpiredAt(now) {
		status = StatusExpired
		plan = PlanFree
	}

	active := status.grantsAccess()
	effective := PlanFree
	if active {
		effective = plan
	}
	cfg := Lookup(effective)

	var daysRemaining *int
	if status == StatusTrialing && account.TrialEndsAt != nil {
		days := trialDaysRemaining(*account.TrialEndsAt, now)
		daysRemaining = &days
	}

	var trialEndsAt *time.Time
	if account.TrialEndsAt != nil {
		t := *account.TrialEndsAt
		trialEndsAt = &t
	}

	return EffectiveSubscription{
		Plan:               cfg.ID,
		PlanName:           cfg.Name,
		Status:             status,
		Features:           cfg.Features,
		IsPro:              cfg.ID.IsPaid(),
		IsFamilyPlan:       cfg.ID.IsFamily(),
		IsActive:           active,
		IsTrial:            status == StatusTrialing,
		TrialEndsAt:        trialEndsAt,
		TrialDaysRemaining: daysRemaining,
		HasUsedTrial:       account.HasUsedTrial,
		CanStartTrial:      !account.HasUsedTrial && !cfg.ID.IsPaid(),
	}
}

// Can reports whether the effective plan grants key.
func (s EffectiveSubscription) Can(key FeatureKey) bool {
	return truthy(s.Features.Value(key))
}

// trialDaysRemaining rounds partial days up and never goes below zero.
func trialDaysRemaining(endsAt, now time.Time) int {
	remaining := endsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(float64(remaining) / float64(24*time.Hour)))
}
