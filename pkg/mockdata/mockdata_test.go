package mockdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

func TestNewSeedAccount(t *testing.T) {
	t.Parallel()

	acc := mockdata.NewSeedAccount()
	assert.Equal(t, mockdata.SeedAccountID, acc.ID)
	assert.Equal(t, subscription.PlanFree, acc.Plan)
	assert.Equal(t, subscription.StatusFree, acc.Status)
	assert.False(t, acc.HasUsedTrial)
	assert.Equal(t, bioinsight.PhaseLuteal, acc.Phase)
	assert.Equal(t, 2, acc.OnboardingStep)

	// fresh value on every call
	acc.Plan = subscription.PlanLifetime
	assert.Equal(t, subscription.PlanFree, mockdata.NewSeedAccount().Plan)

	sub := subscription.Resolve(mockdata.NewSeedAccount(), time.Now())
	assert.True(t, sub.CanStartTrial)
}

func TestEvents(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2025, 3, 10, 8, 15, 0, 0, loc)
	events := mockdata.Events(now)
	require.Len(t, events, 3)

	for _, e := range events {
		assert.True(t, e.StartTime.Before(e.EndTime), e.ID)
		assert.Equal(t, 10, e.StartTime.Day())
		assert.Equal(t, loc, e.StartTime.Location())
	}
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, loc), events[0].StartTime)
	assert.Equal(t, mockdata.EventIntenseWorkout, events[2].Type)
}

func TestFamilyMembers(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	members := mockdata.FamilyMembers(now)
	require.Len(t, members, 1)
	assert.Equal(t, "Sophie", members[0].Name)
	assert.Equal(t, now, members[0].LastCheckIn)
	assert.Len(t, mockdata.Suggestions(), 2)
}
