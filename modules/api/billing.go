package api

import (
	"net/http"

	"github.com/lunahq/luna/pkg/mockdata"
	"github.com/lunahq/luna/pkg/subscription"
)

// billingHistory lists mock invoices for the effective plan. Trials have not been billed.
func (h *handlers) billingHistory(w http.ResponseWriter, r *http.Request) {
	sub, err := h.currentSubscription(r)
	if err != nil {
		fail(w, r, err)
		return
	}

	views := []invoiceView{}
	if !sub.IsTrial {
		for _, inv := range mockdata.Invoices(subscription.Lookup(sub.Plan), h.now()) {
			views = append(views, newInvoiceView(inv))
		}
	}
	ok(w, r, views)
}
