package store

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/maisonkart/storefront-api/models"
	"github.com/maisonkart/storefront-api/storage"
)

// ShippingFlatRate is the checkout-stage surcharge. Display-only: it is
// added on top of the cart totals and never stored with them.
const ShippingFlatRate = 10.00

// ErrDetailsIncomplete blocks purchase completion until the buyer has
// a shipping address and a recognized payment method on file.
var ErrDetailsIncomplete = errors.New("shipping address and payment method are required")

// Checkout drives the order flow for one session: details on file,
// checkout summary, purchase completion.
type Checkout struct {
	kv        storage.KV
	sessionID string
	cart      *Cart
	details   models.OrderDetails
}

// LoadCheckout loads the session's order details and cart. Absent or
// unparseable details fall back to the defaults.
func LoadCheckout(kv storage.KV, sessionID string) *Checkout {
	co := &Checkout{
		kv:        kv,
		sessionID: sessionID,
		cart:      LoadCart(kv, sessionID),
		details:   models.DefaultOrderDetails(),
	}

	raw, err := kv.Get(sessionID, storage.KeyOrderDetails)
	if err != nil {
		return co
	}
	var details models.OrderDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return co
	}
	co.details = details
	return co
}

func (co *Checkout) Cart() *Cart { return co.cart }

func (co *Checkout) Details() models.OrderDetails { return co.details }

// SaveDetails overwrites the persisted record wholesale; there is no
// field-by-field merge. Validation is deferred to completion.
func (co *Checkout) SaveDetails(details models.OrderDetails) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	if err := co.kv.Set(co.sessionID, storage.KeyOrderDetails, raw); err != nil {
		return err
	}
	co.details = details
	return nil
}

// CanComplete reports whether the purchase may proceed: a non-empty
// address and an accepted payment method. An empty cart does not block.
func (co *Checkout) CanComplete() bool {
	return co.details.Address != "" && co.details.PaymentMethod.Valid()
}

// Summary is the checkout-stage display: cart totals plus the flat
// shipping surcharge on the total.
func (co *Checkout) Summary() models.CheckoutSummary {
	totals := co.cart.Totals()
	return models.CheckoutSummary{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Shipping: ShippingFlatRate,
		Total:    totals.Total + ShippingFlatRate,
	}
}

// CompletePurchase generates the order number, persists it as the
// session's last order number, then clears the cart. The steps run in
// one synchronous flow; nothing else mutates the cart in between.
func (co *Checkout) CompletePurchase() (models.Order, error) {
	if !co.CanComplete() {
		return models.Order{}, ErrDetailsIncomplete
	}

	order := models.Order{
		Number:    generateOrderNumber(),
		Reference: generateReceiptRef(),
		Total:     co.Summary().Total,
		ItemCount: co.cart.ItemCount(),
	}

	raw, err := json.Marshal(order.Number)
	if err != nil {
		return models.Order{}, err
	}
	if err := co.kv.Set(co.sessionID, storage.KeyOrderNumber, raw); err != nil {
		return models.Order{}, err
	}
	if err := co.cart.Clear(); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// LastOrderNumber returns the persisted confirmation value, or "" when
// no purchase has completed for the session yet.
func LastOrderNumber(kv storage.KV, sessionID string) string {
	raw, err := kv.Get(sessionID, storage.KeyOrderNumber)
	if err != nil {
		return ""
	}
	var number string
	if err := json.Unmarshal(raw, &number); err != nil {
		return ""
	}
	return number
}

// generateOrderNumber returns a 7-digit numeric string: enough entropy
// to look unique for a demo, not a globally unique id.
func generateOrderNumber() string {
	return strconv.Itoa(1000000 + rand.IntN(9000000))
}

// generateReceiptRef follows the timestamp-uuid receipt scheme used on
// completion responses; it is never persisted.
func generateReceiptRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
