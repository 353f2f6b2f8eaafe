package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonkart/storefront-api/models"
	"github.com/maisonkart/storefront-api/storage"
)

const testSession = "sess_test"

func TestAddItemMergesOnProductID(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(7, "Lamp", 99.99, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(7, "Lamp", 99.99, 3)
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Lamp", items[0].Title)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(7, "Lamp", 99.99, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(1, "Premium Chair", 199.99, 2)
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, uint(7), items[1].ProductID)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemNormalizesInvalidQuantity(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	item, err := cart.AddItem(1, "Premium Chair", 199.99, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, err = cart.AddItem(2, "Lamp", 99.99, -4)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestTotals(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)

	totals := cart.Totals()
	assert.InDelta(t, 199.99, totals.Subtotal, 1e-9)
	assert.InDelta(t, 19.999, totals.Tax, 1e-9)
	assert.InDelta(t, 219.989, totals.Total, 1e-9)

	// Pure: no mutation, identical result.
	assert.Equal(t, totals, cart.Totals())
}

func TestTotalsTaxIsTenPercentOfSubtotal(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(2, "Lamp", 99.99, 3)
	require.NoError(t, err)

	totals := cart.Totals()
	assert.InDelta(t, totals.Subtotal*0.10, totals.Tax, 1e-9)
	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 1e-9)
}

func TestTotalsEmptyCart(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	assert.Equal(t, models.Totals{}, cart.Totals())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Empty(t, cart.Items())
}

func TestUpdateItemQuantitySets(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)

	found, err := cart.UpdateItemQuantity(1, 4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 4, cart.Items()[0].Quantity)
}

func TestUpdateItemQuantityZeroRemoves(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(2, "Lamp", 99.99, 2)
	require.NoError(t, err)

	found, err := cart.UpdateItemQuantity(1, 0)
	require.NoError(t, err)
	assert.True(t, found)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ProductID)
}

func TestUpdateUnknownItemIsNoOp(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)

	found, err := cart.UpdateItemQuantity(99, 3)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, cart.Items(), 1)
}

func TestRemoveItem(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)

	found, err := cart.RemoveItem(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, cart.Items())
}

func TestCartRoundTrip(t *testing.T) {
	kv := storage.NewMemory()

	cart := LoadCart(kv, testSession)
	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(2, "Lamp", 99.99, 5)
	require.NoError(t, err)

	reloaded := LoadCart(kv, testSession)
	assert.Equal(t, cart.Items(), reloaded.Items())
	assert.Equal(t, cart.Totals(), reloaded.Totals())
}

func TestClearPersistsEmptyCart(t *testing.T) {
	kv := storage.NewMemory()

	cart := LoadCart(kv, testSession)
	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)
	require.NoError(t, cart.Clear())

	raw, err := kv.Get(testSession, storage.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
	assert.Empty(t, LoadCart(kv, testSession).Items())
}

func TestMalformedCartFallsBackToEmpty(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(testSession, storage.KeyCart, []byte(`{not json`)))

	cart := LoadCart(kv, testSession)
	assert.Empty(t, cart.Items())
	assert.Equal(t, models.Totals{}, cart.Totals())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	cart := LoadCart(storage.NewMemory(), testSession)

	_, err := cart.AddItem(1, "Premium Chair", 199.99, 1)
	require.NoError(t, err)

	items := cart.Items()
	items[0].Quantity = 100

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
