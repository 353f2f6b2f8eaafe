package models

type PaymentMethod string

const (
	PaymentMethodVisa       PaymentMethod = "Visa"
	PaymentMethodMasterCard PaymentMethod = "MasterCard"
)

// Valid reports whether the method is one of the accepted values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodVisa || m == PaymentMethodMasterCard
}

// OrderDetails is the buyer's shipping/payment record. It is saved
// wholesale, never merged field-by-field.
type OrderDetails struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// DefaultOrderDetails matches the state of a session that has never
// saved details: empty strings and Visa preselected.
func DefaultOrderDetails() OrderDetails {
	return OrderDetails{PaymentMethod: PaymentMethodVisa}
}

// Order is transient: only Number survives in storage, as the session's
// single "last order number". There is no order history.
type Order struct {
	Number    string  `json:"order_number"`
	Reference string  `json:"reference"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// CheckoutSummary is the checkout-stage display: cart totals plus the
// flat shipping surcharge.
type CheckoutSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
