package subscription

// FeatureKey names a capability in the plan feature record.
type FeatureKey string

const (
	FeatureDailyCheckIns       FeatureKey = "dailyCheckIns"
	FeatureBasicPhaseDetection FeatureKey = "basicPhaseDetection"
	FeatureCalendarSync        FeatureKey = "calendarSync"
	FeatureAdvancedInsights    FeatureKey = "advancedInsights"
	FeatureAutoReschedule      FeatureKey = "autoReschedule"
	FeatureFamilyFeatures      FeatureKey = "familyFeatures"
	FeatureMaxFamilyMembers    FeatureKey = "maxFamilyMembers"
)

var booleanFeatureKeys = []FeatureKey{
	FeatureDailyCheckIns,
	FeatureBasicPhaseDetection,
	FeatureCalendarSync,
	FeatureAdvancedInsights,
	FeatureAutoReschedule,
	FeatureFamilyFeatures,
}

// FeatureKeys returns every known feature key.
func FeatureKeys() []FeatureKey {
	return append(append([]FeatureKey{}, booleanFeatureKeys...), FeatureMaxFamilyMembers)
}

// Value returns the raw value stored for key: a bool, an int, or nil for an unknown key.
func (f Features) Value(key FeatureKey) any {
	switch key {
	case FeatureDailyCheckIns:
		return f.DailyCheckIns
	case FeatureBasicPhaseDetection:
		return f.BasicPhaseDetection
	case FeatureCalendarSync:
		return f.CalendarSync
	case FeatureAdvancedInsights:
		return f.AdvancedInsights
	case FeatureAutoReschedule:
		return f.AutoReschedule
	case FeatureFamilyFeatures:
		return f.FamilyFeatures
	case FeatureMaxFamilyMembers:
		return f.MaxFamilyMembers
	default:
		return nil
	}
}

// HasFeature reports whether plan grants key.
// Booleans pass through, numbers are granted when positive, anything else is denied.
func HasFeature(plan Plan, key FeatureKey) bool {
	return truthy(plan.Features.Value(key))
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val > 0
	case int64:
		return val > 0
	case float64:
		return val > 0
	default:
		return false
	}
}
