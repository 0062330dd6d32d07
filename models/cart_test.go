package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64, qty int) CartItem {
	return CartItem{
		ProductID: id,
		Name:      "Item " + id,
		NameAr:    "عنصر " + id,
		Price:     price,
		Quantity:  qty,
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	cart := NewCart("s1")

	cart.AddItem(item("p1", 100, 2))
	cart.AddItem(item("p1", 100, 3))

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemQuantityFloor(t *testing.T) {
	cart := NewCart("s1")

	cart.AddItem(item("p1", 100, 0))
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.AddItem(item("p2", 50, -4))
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	cart := NewCart("s1")

	cart.AddItem(item("p1", 100, 1))
	cart.AddItem(item("p2", 50, 1))
	cart.AddItem(item("p3", 25, 1))
	cart.AddItem(item("p1", 100, 1)) // merge must not reorder

	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, "p3", cart.Items[2].ProductID)
}

func TestUpdateQuantity(t *testing.T) {
	cart := NewCart("s1")
	cart.AddItem(item("p1", 100, 2))
	cart.AddItem(item("p2", 50, 1))

	cart.UpdateQuantity("p1", 7)
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// zero and negative both remove the row
	cart.UpdateQuantity("p1", 0)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	cart.UpdateQuantity("p2", -1)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantityAbsentIDIsNoOp(t *testing.T) {
	cart := NewCart("s1")
	cart.AddItem(item("p1", 100, 2))

	cart.UpdateQuantity("missing", 5)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart("s1")
	cart.AddItem(item("p1", 100, 2))
	cart.AddItem(item("p2", 50, 1))

	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)

	// absent id is a no-op
	cart.RemoveItem("p1")
	assert.Len(t, cart.Items, 1)
}

func TestDerivedTotals(t *testing.T) {
	cart := NewCart("s1")
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())

	cart.AddItem(item("p1", 100, 2))
	cart.AddItem(item("p2", 50, 1))
	assert.Equal(t, 3, cart.TotalItems())
	assert.Equal(t, 250.0, cart.TotalPrice())

	cart.UpdateQuantity("p2", 4)
	assert.Equal(t, 6, cart.TotalItems())
	assert.Equal(t, 400.0, cart.TotalPrice())

	cart.RemoveItem("p1")
	assert.Equal(t, 4, cart.TotalItems())
	assert.Equal(t, 200.0, cart.TotalPrice())
}

func TestClear(t *testing.T) {
	cart := NewCart("s1")
	cart.AddItem(item("p1", 100, 2))
	cart.AddItem(item("p2", 50, 1))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, 0.0, cart.TotalPrice())
}
