package models

import "time"

// CartItem is one product line in a cart. ProductID is unique within the
// cart; adding the same product again increments Quantity instead of
// inserting a second row.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-session shopping cart. Items keep insertion order.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the given session.
func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
	}
}

// AddItem merges the given item into the cart. An existing row for the same
// product id has its quantity incremented; otherwise the item is appended.
// Quantities below one are treated as one.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of the row with the given product id.
// A quantity of zero or less removes the row. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i, existing := range c.Items {
		if existing.ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the row with the given product id, if present.
func (c *Cart) RemoveItem(productID string) {
	for i, existing := range c.Items {
		if existing.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear removes all rows.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// TotalItems returns the sum of all row quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all rows.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no rows.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
