package subscription

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PlanID identifies a catalog plan. The set of values is closed.
type PlanID string

const (
	PlanFree         PlanID = "FREE"
	PlanProMonthly   PlanID = "PRO_MONTHLY"
	PlanProYearly    PlanID = "PRO_YEARLY"
	PlanLifetime     PlanID = "LIFETIME"
	PlanFamilyDuo    PlanID = "FAMILY_DUO"
	PlanFamilyPlus   PlanID = "FAMILY_PLUS"
	PlanFamilyLegacy PlanID = "FAMILY_LEGACY"
)

// Valid reports whether id names a catalog plan.
func (id PlanID) Valid() bool {
	_, ok := catalog[id]
	return ok
}

// IsPaid reports whether id is anything other than the free plan.
// Unknown identifiers are treated as the free plan.
func (id PlanID) IsPaid() bool {
	return id.Valid() && id != PlanFree
}

func (id PlanID) IsFamily() bool {
	return id.Valid() && strings.HasPrefix(string(id), "FAMILY_")
}

// IsIndividual reports whether id is one of the Pro subscription plans.
// LIFETIME is a one-time purchase and belongs to neither the individual nor
// the family tier, so moves between it and a family plan classify as a switch.
func (id PlanID) IsIndividual() bool {
	return id.Valid() && strings.HasPrefix(string(id), "PRO_")
}

// Status is the stored subscription status of an account.
type Status string

const (
	StatusFree     Status = "FREE"
	StatusTrialing Status = "TRIALING"
	StatusActive   Status = "ACTIVE"
	StatusPastDue  Status = "PAST_DUE"
	StatusCanceled Status = "CANCELED"
	StatusExpired  Status = "EXPIRED"
	StatusLifetime Status = "LIFETIME"
)

// grantsAccess reports whether the status entitles the account to its stored plan.
func (s Status) grantsAccess() bool {
	switch s {
	case StatusActive, StatusTrialing, StatusLifetime:
		return true
	default:
		return false
	}
}

// BillingInterval represents the billing frequency for a plan.
type BillingInterval string

const (
	BillingIntervalNone     BillingInterval = "none" // free plan
	BillingIntervalMonthly  BillingInterval = "monthly"
	BillingIntervalAnnual   BillingInterval = "annual"
	BillingIntervalLifetime BillingInterval = "lifetime" // one-time purchase
)

// AccountType distinguishes standalone users from family roles.
type AccountType string

const (
	AccountIndividual AccountType = "INDIVIDUAL"
	AccountParent     AccountType = "PARENT"
	AccountDaughter   AccountType = "DAUGHTER"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, $14.99 USD is Amount: 1499, Currency: "USD".
type Money struct {
	Amount   int64  // cents for USD
	Currency string // ISO 4217 currency code
}

// Major returns the amount in major currency units.
func (m Money) Major() float64 {
	return float64(m.Amount) / 100
}

// String formats the amount with its currency symbol, e.g. "$ 14.99".
// An unknown currency code falls back to USD.
func (m Money) String() string {
	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(m.Major())))
}

func usd(cents int64) Money {
	return Money{Amount: cents, Currency: "USD"}
}
