package subscription

import (
	"time"

	"github.com/google/uuid"

	"github.com/lunahq/luna/pkg/bioinsight"
)

// Account holds the stored subscription fields of a user.
// HasUsedTrial only ever moves from false to true.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Type         AccountType
	Plan         PlanID
	Status       Status
	TrialEndsAt  *time.Time // set while a trial is (or was) running
	HasUsedTrial bool

	Phase              bioinsight.Phase
	OnboardingComplete bool
	OnboardingStep     int
}

// Clone returns a copy that shares no pointers with a.
func (a Account) Clone() Account {
	c := a
	if a.TrialEndsAt != nil {
		t := *a.TrialEndsAt
		c.TrialEndsAt = &t
	}
	return c
}

// IsTrialing returns true if the stored status is TRIALING.
func (a Account) IsTrialing() bool {
	return a.Status == StatusTrialing
}

// IsTrialExpiredAt reports whether a trial end date exists and lies before now.
func (a Account) IsTrialExpiredAt(now time.Time) bool {
	if a.TrialEndsAt == nil {
		return false
	}
	return now.After(*a.TrialEndsAt)
}
