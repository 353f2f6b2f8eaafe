package storage

import "errors"

// ErrNotFound is returned when a session has no value under a key.
var ErrNotFound = errors.New("storage: key not found")

// Keys under which the storefront persists its state, one JSON blob
// each: the cart as an array of line items, the order details as an
// object, and the last order number as a string.
const (
	KeyCart         = "cart"
	KeyOrderDetails = "orderDetails"
	KeyOrderNumber  = "orderNumber"
)

// KV is the durable state boundary: string-keyed JSON blobs scoped to
// a session. Writes are last-write-wins across concurrent holders of
// the same session id; nothing is ever deleted.
type KV interface {
	Get(sessionID, key string) ([]byte, error)
	Set(sessionID, key string, value []byte) error
}
