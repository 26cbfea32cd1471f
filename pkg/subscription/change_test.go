package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lunahq/luna/pkg/subscription"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current subscription.PlanID
		target  subscription.PlanID
		want    subscription.ChangeKind
	}{
		{subscription.PlanFree, subscription.PlanProMonthly, subscription.ChangeSubscribe},
		{subscription.PlanFree, subscription.PlanFamilyDuo, subscription.ChangeSubscribe},
		{subscription.PlanProMonthly, subscription.PlanFamilyDuo, subscription.ChangeUpgrade},
		{subscription.PlanLifetime, subscription.PlanFamilyPlus, subscription.ChangeSwitch},
		{subscription.PlanFamilyDuo, subscription.PlanLifetime, subscription.ChangeSwitch},
		{subscription.PlanProYearly, subscription.PlanLifetime, subscription.ChangeSwitch},
		{subscription.PlanFamilyDuo, subscription.PlanProMonthly, subscription.ChangeDowngrade},
		{subscription.PlanFamilyLegacy, subscription.PlanProYearly, subscription.ChangeDowngrade},
		{subscription.PlanProMonthly, subscription.PlanProMonthly, subscription.ChangeCurrent},
		{subscription.PlanFree, subscription.PlanFree, subscription.ChangeCurrent},
		{subscription.PlanProMonthly, subscription.PlanProYearly, subscription.ChangeSwitch},
		{subscription.PlanFamilyDuo, subscription.PlanFamilyPlus, subscription.ChangeSwitch},
		{subscription.PlanProMonthly, subscription.PlanFree, subscription.ChangeSwitch},
		{"UNKNOWN", subscription.PlanProMonthly, subscription.ChangeSubscribe},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+string(tt.target), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, subscription.Classify(tt.current, tt.target))
		})
	}
}

func TestChangeKind_ActionLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Current Plan", subscription.ChangeCurrent.ActionLabel())
	assert.Equal(t, "Upgrade Plan", subscription.ChangeUpgrade.ActionLabel())
	assert.Equal(t, "Switch Plan", subscription.ChangeDowngrade.ActionLabel())
	assert.Equal(t, "Switch Plan", subscription.ChangeSwitch.ActionLabel())
	assert.Equal(t, "Subscribe", subscription.ChangeSubscribe.ActionLabel())
}
