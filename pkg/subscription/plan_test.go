package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/subscription"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("known plans", func(t *testing.T) {
		t.Parallel()
		for _, p := range subscription.Plans() {
			got := subscription.Lookup(p.ID)
			assert.Equal(t, p.ID, got.ID)
			assert.Equal(t, p.Name, got.Name)
		}
	})

	t.Run("unknown identifiers fall back to free", func(t *testing.T) {
		t.Parallel()
		for _, id := range []subscription.PlanID{"", "ENTERPRISE", "free", "PRO"} {
			got := subscription.Lookup(id)
			assert.Equal(t, subscription.PlanFree, got.ID, "id %q", id)
			assert.False(t, subscription.HasFeature(got, subscription.FeatureCalendarSync))
		}
	})
}

func TestPlans(t *testing.T) {
	t.Parallel()

	plans := subscription.Plans()
	require.Len(t, plans, 7)
	assert.Equal(t, subscription.PlanFree, plans[0].ID)
	assert.Equal(t, subscription.PlanFamilyLegacy, plans[6].ID)

	// callers get copies of the catalog
	plans[0].Name = "changed"
	assert.Equal(t, "Free", subscription.Lookup(subscription.PlanFree).Name)
}

func TestCatalogValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       subscription.PlanID
		price    int64
		interval subscription.BillingInterval
		members  int
		family   bool
	}{
		{subscription.PlanFree, 0, subscription.BillingIntervalNone, 0, false},
		{subscription.PlanProMonthly, 1499, subscription.BillingIntervalMonthly, 0, false},
		{subscription.PlanProYearly, 11988, subscription.BillingIntervalAnnual, 0, false},
		{subscription.PlanLifetime, 19900, subscription.BillingIntervalLifetime, 0, false},
		{subscription.PlanFamilyDuo, 2499, subscription.BillingIntervalMonthly, 1, true},
		{subscription.PlanFamilyPlus, 3499, subscription.BillingIntervalMonthly, 3, true},
		{subscription.PlanFamilyLegacy, 4999, subscription.BillingIntervalMonthly, 999, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			p := subscription.Lookup(tt.id)
			assert.Equal(t, tt.price, p.Price.Amount)
			assert.Equal(t, "USD", p.Price.Currency)
			assert.Equal(t, tt.interval, p.Interval)
			assert.Equal(t, tt.members, p.Features.MaxFamilyMembers)
			assert.Equal(t, tt.family, p.Features.FamilyFeatures)
			assert.True(t, p.Features.DailyCheckIns)
			assert.Equal(t, tt.id != subscription.PlanFree, p.Features.CalendarSync)
		})
	}
}

func TestPlanIDPredicates(t *testing.T) {
	t.Parallel()

	assert.False(t, subscription.PlanFree.IsPaid())
	assert.True(t, subscription.PlanLifetime.IsPaid())
	assert.False(t, subscription.PlanID("BOGUS").IsPaid())

	assert.True(t, subscription.PlanProYearly.IsIndividual())
	assert.False(t, subscription.PlanLifetime.IsIndividual())
	assert.False(t, subscription.PlanFamilyPlus.IsIndividual())
	assert.False(t, subscription.PlanFree.IsIndividual())

	assert.True(t, subscription.PlanFamilyDuo.IsFamily())
	assert.False(t, subscription.PlanID("FAMILY_XL").IsFamily())
}

func TestHasFeature(t *testing.T) {
	t.Parallel()

	free := subscription.Lookup(subscription.PlanFree)
	pro := subscription.Lookup(subscription.PlanProMonthly)
	duo := subscription.Lookup(subscription.PlanFamilyDuo)

	assert.True(t, subscription.HasFeature(free, subscription.FeatureDailyCheckIns))
	assert.False(t, subscription.HasFeature(free, subscription.FeatureAdvancedInsights))
	assert.True(t, subscription.HasFeature(pro, subscription.FeatureAutoReschedule))
	assert.False(t, subscription.HasFeature(pro, subscription.FeatureFamilyFeatures))
	assert.True(t, subscription.HasFeature(duo, subscription.FeatureFamilyFeatures))

	t.Run("numeric features are granted when positive", func(t *testing.T) {
		t.Parallel()
		assert.False(t, subscription.HasFeature(pro, subscription.FeatureMaxFamilyMembers))
		assert.True(t, subscription.HasFeature(duo, subscription.FeatureMaxFamilyMembers))

		custom := subscription.Plan{Features: subscription.Features{MaxFamilyMembers: 0}}
		assert.False(t, subscription.HasFeature(custom, subscription.FeatureMaxFamilyMembers))
		custom.Features.MaxFamilyMembers = 1
		assert.True(t, subscription.HasFeature(custom, subscription.FeatureMaxFamilyMembers))
	})

	t.Run("unknown key is denied", func(t *testing.T) {
		t.Parallel()
		assert.False(t, subscription.HasFeature(duo, subscription.FeatureKey("teleport")))
		assert.Nil(t, duo.Features.Value("teleport"))
	})

	t.Run("every key has a value", func(t *testing.T) {
		t.Parallel()
		for _, key := range subscription.FeatureKeys() {
			assert.NotNil(t, duo.Features.Value(key), key)
			assert.True(t, subscription.HasFeature(duo, key), key)
		}
	})
}

func TestComparePlans(t *testing.T) {
	t.Parallel()

	free := subscription.Lookup(subscription.PlanFree)
	pro := subscription.Lookup(subscription.PlanProMonthly)
	plus := subscription.Lookup(subscription.PlanFamilyPlus)

	up := subscription.ComparePlans(free, pro)
	assert.ElementsMatch(t, []subscription.FeatureKey{
		subscription.FeatureCalendarSync,
		subscription.FeatureAdvancedInsights,
		subscription.FeatureAutoReschedule,
	}, up.NewFeatures)
	assert.Empty(t, up.LostFeatures)
	assert.False(t, up.HasLosses())
	assert.True(t, up.PriceChange.Increased())

	down := subscription.ComparePlans(plus, pro)
	assert.Equal(t, []subscription.FeatureKey{subscription.FeatureFamilyFeatures}, down.LostFeatures)
	assert.Equal(t, subscription.ResourceChange{From: 3, To: 0}, down.SeatChange)
	assert.True(t, down.HasLosses())

	same := subscription.ComparePlans(pro, subscription.Lookup(subscription.PlanProYearly))
	assert.Empty(t, same.NewFeatures)
	assert.Empty(t, same.LostFeatures)
}

func TestMoneyString(t *testing.T) {
	t.Parallel()

	s := subscription.Money{Amount: 1499, Currency: "USD"}.String()
	assert.Contains(t, s, "14.99")
	assert.Contains(t, s, "$")

	assert.InDelta(t, 119.88, subscription.Lookup(subscription.PlanProYearly).Price.Major(), 0.001)
}
