package api

import (
	"time"

	"github.com/lunahq/luna/pkg/bioinsight"
	"github.com/lunahq/luna/pkg/dashboard"
	"github.com/lunahq/luna/pkg/external"
	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

type moneyView struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func newMoneyView(m subscription.Money) moneyView {
	return moneyView{Amount: m.Amount, Currency: m.Currency, Formatted: m.String()}
}

type featuresView struct {
	DailyCheckIns       bool `json:"dailyCheckIns"`
	BasicPhaseDetection bool `json:"basicPhaseDetection"`
	CalendarSync        bool `json:"calendarSync"`
	AdvancedInsights    bool `json:"advancedInsights"`
	AutoReschedule      bool `json:"autoReschedule"`
	FamilyFeatures      bool `json:"familyFeatures"`
	MaxFamilyMembers    int  `json:"maxFamilyMembers"`
}

func newFeaturesView(f subscription.Features) featuresView {
	return featuresView(f)
}

type planView struct {
	ID          subscription.PlanID          `json:"id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Price       moneyView                    `json:"price"`
	Interval    subscription.BillingInterval `json:"interval"`
	Features    featuresView                 `json:"features"`
	IsFamily    bool                         `json:"isFamily"`
	Change      subscription.ChangeKind      `json:"change"`
	ActionLabel string                       `json:"actionLabel"`
}

func newPlanView(p subscription.Plan, current subscription.PlanID) planView {
	kind := subscription.Classify(current, p.ID)
	return planView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       newMoneyView(p.Price),
		Interval:    p.Interval,
		Features:    newFeaturesView(p.Features),
		IsFamily:    p.ID.IsFamily(),
		Change:      kind,
		ActionLabel: kind.ActionLabel(),
	}
}

type subscriptionView struct {
	Plan               subscription.PlanID `json:"plan"`
	PlanName           string              `json:"planName"`
	Status             subscription.Status `json:"status"`
	Features           featuresView        `json:"features"`
	IsPro              bool                `json:"isPro"`
	IsFamilyPlan       bool                `json:"isFamilyPlan"`
	IsActive           bool                `json:"isActive"`
	IsTrial            bool                `json:"isTrial"`
	TrialEndsAt        *time.Time          `json:"trialEndsAt"`
	TrialDaysRemaining *int                `json:"trialDaysRemaining"`
	HasUsedTrial       bool                `json:"hasUsedTrial"`
	CanStartTrial      bool                `json:"canStartTrial"`
}

func newSubscriptionView(s subscription.EffectiveSubscription) subscriptionView {
	return subscriptionView{
		Plan:               s.Plan,
		PlanName:           s.PlanName,
		Status:             s.Status,
		Features:           newFeaturesView(s.Features),
		IsPro:              s.IsPro,
		IsFamilyPlan:       s.IsFamilyPlan,
		IsActive:           s.IsActive,
		IsTrial:            s.IsTrial,
		TrialEndsAt:        s.TrialEndsAt,
		TrialDaysRemaining: s.TrialDaysRemaining,
		HasUsedTrial:       s.HasUsedTrial,
		CanStartTrial:      s.CanStartTrial,
	}
}

type rangeView struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

type changeView struct {
	Current      subscription.PlanID       `json:"current"`
	Target       subscription.PlanID       `json:"target"`
	Change       subscription.ChangeKind   `json:"change"`
	ActionLabel  string                    `json:"actionLabel"`
	NewFeatures  []subscription.FeatureKey `json:"newFeatures"`
	LostFeatures []subscription.FeatureKey `json:"lostFeatures"`
	Seats        rangeView                 `json:"seats"`
	Price        rangeView                 `json:"price"`
	HasLosses    bool                      `json:"hasLosses"`
}

type quoteView struct {
	Plan        subscription.PlanID        `json:"plan"`
	Method      subscription.PaymentMethod `json:"method"`
	Change      subscription.ChangeKind    `json:"change"`
	ActionLabel string                     `json:"actionLabel"`
	Subtotal    moneyView                  `json:"subtotal"`
	Discount    moneyView                  `json:"discount"`
	Total       moneyView                  `json:"total"`
	BTCAmount   float64                    `json:"btcAmount,omitempty"`
	BTCPrice    float64                    `json:"btcPrice,omitempty"`
	BTCLive     bool                       `json:"btcLive,omitempty"`
}

func newQuoteView(q subscription.CheckoutQuote) quoteView {
	return quoteView{
		Plan:        q.Plan,
		Method:      q.Method,
		Change:      q.Change,
		ActionLabel: q.Change.ActionLabel(),
		Subtotal:    newMoneyView(q.Subtotal),
		Discount:    newMoneyView(q.Discount),
		Total:       newMoneyView(q.Total),
		BTCAmount:   q.BTCAmount,
	}
}

type slotView[T any] struct {
	Value T    `json:"value"`
	Live  bool `json:"live"`
}

func newSlotView[T any](r external.Result[T]) slotView[T] {
	return slotView[T]{Value: r.Value, Live: !r.Fallback()}
}

type onboardingView struct {
	Step int `json:"step"`
}

type dashboardView struct {
	Greeting     string                       `json:"greeting"`
	Subscription subscriptionView             `json:"subscription"`
	Phase        bioinsight.Phase             `json:"phase"`
	PhaseInfo    bioinsight.PhaseInfo         `json:"phaseInfo"`
	Weather      slotView[bioinsight.Weather] `json:"weather"`
	Conditions   string                       `json:"conditions"`
	Quote        slotView[external.Quote]     `json:"quote"`
	Art          slotView[external.Artwork]   `json:"art"`
	Insight      bioinsight.Insight           `json:"insight"`
	Events       []mockdata.Event             `json:"events"`
	Suggestions  []mockdata.Suggestion        `json:"suggestions"`
	Onboarding   *onboardingView              `json:"onboarding,omitempty"`
	Degraded     bool                         `json:"degraded"`
}

func newDashboardView(d dashboard.Dashboard) dashboardView {
	v := dashboardView{
		Greeting:     d.Greeting,
		Subscription: newSubscriptionView(d.Subscription),
		Phase:        d.Phase,
		PhaseInfo:    d.PhaseInfo,
		Weather:      newSlotView(d.Weather),
		Conditions:   d.Conditions,
		Quote:        newSlotView(d.Quote),
		Art:          newSlotView(d.Art),
		Insight:      d.Insight,
		Events:       d.Events,
		Suggestions:  d.Suggestions,
		Degraded:     d.Degraded(),
	}
	if d.OnboardingPrompt != nil {
		v.Onboarding = &onboardingView{Step: d.OnboardingPrompt.Step}
	}
	return v
}

type familyView struct {
	Plan        subscription.PlanID     `json:"plan"`
	MaxMembers  int                     `json:"maxMembers"`
	Members     []mockdata.FamilyMember `json:"members"`
	Invitations []mockdata.Invitation   `json:"invitations"`
	SeatsLeft   int                     `json:"seatsLeft"`
	Alerts      []mockdata.Alert        `json:"alerts"`
}

type suggestionResult struct {
	Suggestion mockdata.Suggestion       `json:"suggestion"`
	Action     mockdata.SuggestionAction `json:"action"`
	Remaining  []mockdata.Suggestion     `json:"remaining"`
}

type invoiceView struct {
	ID     string                 `json:"id"`
	Number string                 `json:"number"`
	Date   time.Time              `json:"date"`
	Amount moneyView              `json:"amount"`
	Status mockdata.InvoiceStatus `json:"status"`
}

func newInvoiceView(inv mockdata.Invoice) invoiceView {
	return invoiceView{
		ID:     inv.ID,
		Number: inv.Number,
		Date:   inv.Date,
		Amount: newMoneyView(inv.Amount),
		Status: inv.Status,
	}
}

type nutritionView struct {
	Phase     bioinsight.Phase        `json:"phase"`
	Nutrition bioinsight.Nutrition    `json:"nutrition"`
	Meal      slotView[external.Meal] `json:"meal"`
}
