package subscription

import "slices"

// Plan describes a catalog plan and the features it grants.
type Plan struct {
	ID          PlanID
	Name        string
	Description string
	Price       Money
	Interval    BillingInterval
	Features    Features
}

// Features is the entitlement record attached to a plan.
type Features struct {
	DailyCheckIns       bool
	BasicPhaseDetection bool
	CalendarSync        bool
	AdvancedInsights    bool
	AutoReschedule      bool
	FamilyFeatures      bool
	MaxFamilyMembers    int
}

var (
	freeFeatures = Features{
		DailyCheckIns:       true,
		BasicPhaseDetection: true,
	}
	individualFeatures = Features{
		DailyCheckIns:       true,
		BasicPhaseDetection: true,
		CalendarSync:        true,
		AdvancedInsights:    true,
		AutoReschedule:      true,
	}
)

func familyFeatures(members int) Features {
	f := individualFeatures
	f.FamilyFeatures = true
	f.MaxFamilyMembers = members
	return f
}

// catalogOrder is the display order used by Plans.
var catalogOrder = []PlanID{
	PlanFree,
	PlanProMonthly,
	PlanProYearly,
	PlanLifetime,
	PlanFamilyDuo,
	PlanFamilyPlus,
	PlanFamilyLegacy,
}

// catalog is built once at package init and never written afterwards.
var catalog = map[PlanID]Plan{
	PlanFree: {
		ID:          PlanFree,
		Name:        "Free",
		Description: "Basic cycle tracking",
		Price:       usd(0),
		Interval:    BillingIntervalNone,
		Features:    freeFeatures,
	},
	PlanProMonthly: {
		ID:          PlanProMonthly,
		Name:        "Pro Monthly",
		Description: "Full power for individuals",
		Price:       usd(1499),
		Interval:    BillingIntervalMonthly,
		Features:    individualFeatures,
	},
	PlanProYearly: {
		ID:          PlanProYearly,
		Name:        "Pro Annual",
		Description: "Best value for individuals",
		Price:       usd(11988),
		Interval:    BillingIntervalAnnual,
		Features:    individualFeatures,
	},
	PlanLifetime: {
		ID:          PlanLifetime,
		Name:        "Lifetime",
		Description: "One-time purchase, forever access",
		Price:       usd(19900),
		Interval:    BillingIntervalLifetime,
		Features:    individualFeatures,
	},
	PlanFamilyDuo: {
		ID:          PlanFamilyDuo,
		Name:        "Family Duo",
		Description: "1 parent + 1 daughter",
		Price:       usd(2499),
		Interval:    BillingIntervalMonthly,
		Features:    familyFeatures(1),
	},
	PlanFamilyPlus: {
		ID:          PlanFamilyPlus,
		Name:        "Family Plus",
		Description: "1 parent + up to 3 daughters",
		Price:       usd(3499),
		Interval:    BillingIntervalMonthly,
		Features:    familyFeatures(3),
	},
	PlanFamilyLegacy: {
		ID:          PlanFamilyLegacy,
		Name:        "Family Legacy",
		Description: "2 parents + unlimited daughters",
		Price:       usd(4999),
		Interval:    BillingIntervalMonthly,
		Features:    familyFeatures(999),
	},
}

// Lookup returns the catalog plan for id.
// Unknown or empty identifiers resolve to the free plan.
func Lookup(id PlanID) Plan {
	if p, ok := catalog[id]; ok {
		return p
	}
	return catalog[PlanFree]
}

// Plans returns every catalog plan in display order.
func Plans() []Plan {
	plans := make([]Plan, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		plans = append(plans, catalog[id])
	}
	return plans
}

// PlanComparison contains the differences between two plans.
// Used by the checkout summary to tell the user what changes.
type PlanComparison struct {
	NewFeatures  []FeatureKey
	LostFeatures []FeatureKey
	SeatChange   ResourceChange
	PriceChange  ResourceChange // in cents
}

// ResourceChange represents a change in a numeric value.
type ResourceChange struct {
	From int64
	To   int64
}

func (c ResourceChange) Increased() bool { return c.To > c.From }
func (c ResourceChange) Decreased() bool { return c.To < c.From }

// HasLosses returns true if the target plan takes away anything the current plan grants.
func (c *PlanComparison) HasLosses() bool {
	return len(c.LostFeatures) > 0 || c.SeatChange.Decreased()
}

// ComparePlans returns the differences between current and target plans.
func ComparePlans(current, target Plan) *PlanComparison {
	comparison := &PlanComparison{
		NewFeatures:  make([]FeatureKey, 0),
		LostFeatures: make([]FeatureKey, 0),
		SeatChange: ResourceChange{
			From: int64(current.Features.MaxFamilyMembers),
			To:   int64(target.Features.MaxFamilyMembers),
		},
		PriceChange: ResourceChange{From: current.Price.Amount, To: target.Price.Amount},
	}

	for _, key := range booleanFeatureKeys {
		had := HasFeature(current, key)
		has := HasFeature(target, key)
		switch {
		case has && !had:
			comparison.NewFeatures = append(comparison.NewFeatures, key)
		case had && !has:
			comparison.LostFeatures = append(comparison.LostFeatures, key)
		}
	}

	slices.Sort(comparison.NewFeatures)
	slices.Sort(comparison.LostFeatures)
	return comparison
}
