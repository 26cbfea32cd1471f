package mockdata

import (
	"fmt"
	"time"

	"github.com/lunahq/luna/pkg/subscription"
)

type InvoiceStatus string

const InvoicePaid InvoiceStatus = "Paid"

// Invoice is a line of the mock billing history.
type Invoice struct {
	ID     string
	Number string
	Date   time.Time
	Amount subscription.Money
	Status InvoiceStatus
}

// Invoices returns the billing history for plan as of now, newest first.
// The free plan has none, one-time and annual plans have a single charge, and
// monthly plans show the last three charges on the first of each month.
func Invoices(plan subscription.Plan, now time.Time) []Invoice {
	count := 3
	switch plan.Interval {
	case subscription.BillingIntervalNone:
		return []Invoice{}
	case subscription.BillingIntervalAnnual, subscription.BillingIntervalLifetime:
		count = 1
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	invoices := make([]Invoice, 0, count)
	for i := range count {
		date := first.AddDate(0, -i, 0)
		invoices = append(invoices, Invoice{
			ID:     fmt.Sprintf("inv_%d", i+1),
			Number: fmt.Sprintf("INV-%d-%03d", date.Year(), i+1),
			Date:   date,
			Amount: plan.Price,
			Status: InvoicePaid,
		})
	}
	return invoices
}
