package store

import (
	"encoding/json"

	"github.com/maisonkart/storefront-api/models"
	"github.com/maisonkart/storefront-api/storage"
)

// TaxRate applied to the cart subtotal.
const TaxRate = 0.10

// Cart owns the session's line items. It is loaded fresh from storage
// for every request and written back after each mutation; the storage
// row is the only state shared between requests.
type Cart struct {
	kv        storage.KV
	sessionID string
	items     []models.LineItem
}

// LoadCart rebuilds the cart from storage. An absent or unparseable
// blob yields an empty cart, which is a valid displayable state.
func LoadCart(kv storage.KV, sessionID string) *Cart {
	c := &Cart{kv: kv, sessionID: sessionID}

	raw, err := kv.Get(sessionID, storage.KeyCart)
	if err != nil {
		return c
	}
	var items []models.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return c
	}
	c.items = items
	return c
}

// AddItem merges on ProductID: an existing entry gets its quantity
// incremented, otherwise the item is appended in insertion order.
// Non-positive quantities (including failed upstream parses arriving
// as zero) are normalized to 1.
func (c *Cart) AddItem(productID uint, title string, unitPrice float64, quantity int) (models.LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return c.items[i], c.save()
		}
	}
	item := models.LineItem{
		ProductID: productID,
		Title:     title,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	c.items = append(c.items, item)
	return item, c.save()
}

// UpdateItemQuantity sets the quantity when n > 0 and removes the item
// entirely when n <= 0; a zero or negative quantity is never stored.
// Returns false and leaves the cart untouched when the id is unknown.
func (c *Cart) UpdateItemQuantity(productID uint, n int) (bool, error) {
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if n > 0 {
			c.items[i].Quantity = n
		} else {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return true, c.save()
	}
	return false, nil
}

func (c *Cart) RemoveItem(productID uint) (bool, error) {
	return c.UpdateItemQuantity(productID, 0)
}

// Clear empties the cart. Purchase completion is the only caller.
func (c *Cart) Clear() error {
	c.items = nil
	return c.save()
}

// Totals derives subtotal, tax and total from the current items. Pure:
// no storage access, no rounding — display formatting is the
// presentation adapter's concern.
func (c *Cart) Totals() models.Totals {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return models.Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// ItemCount is the cart badge value: the sum of all quantities.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns a snapshot copy; mutations go through the named
// operations so every change is persisted.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) save() error {
	items := c.items
	if items == nil {
		items = []models.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.kv.Set(c.sessionID, storage.KeyCart, raw)
}
