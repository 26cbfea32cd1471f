package subscription

import "math"

// PaymentMethod is the payment option picked on the checkout screen.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCrypto PaymentMethod = "crypto"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCrypto
}

// CryptoDiscountPercent is taken off the total when paying with crypto.
const CryptoDiscountPercent = 5

// CheckoutQuote is the price breakdown shown before a mock checkout.
// Nothing is charged; it only informs the confirmation screen.
type CheckoutQuote struct {
	Plan      PlanID
	Method    PaymentMethod
	Change    ChangeKind
	Subtotal  Money
	Discount  Money
	Total     Money
	BTCAmount float64 // zero when no BTC price is known or method is card
}

// Quote prices a checkout of target from current using method.
// btcUSD is the BTC/USD rate; pass zero when unknown.
func Quote(current, target PlanID, method PaymentMethod, btcUSD float64) (CheckoutQuote, error) {
	if !target.Valid() {
		return CheckoutQuote{}, ErrPlanNotFound
	}
	if !method.Valid() {
		return CheckoutQuote{}, ErrInvalidPaymentMethod
	}

	plan := Lookup(target)
	q := CheckoutQuote{
		Plan:     plan.ID,
		Method:   method,
		Change:   Classify(current, target),
		Subtotal: plan.Price,
		Discount: Money{Currency: plan.Price.Currency},
		Total:    plan.Price,
	}

	if method == PaymentCrypto {
		q.Discount.Amount = (plan.Price.Amount*CryptoDiscountPercent + 50) / 100
		q.Total.Amount = plan.Price.Amount - q.Discount.Amount
		if btcUSD > 0 {
			q.BTCAmount = math.Round(q.Total.Major()/btcUSD*1e6) / 1e6
		}
	}

	return q, nil
}
