package models

// LineItem is one product entry in the cart. Items merge on ProductID;
// Title and UnitPrice are snapshots taken from the catalog when the
// item was first added.
type LineItem struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"` // always >= 1 while the item exists
}

// Totals are derived from cart contents only. The checkout shipping
// surcharge is layered on top at display time and never feeds back in.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
