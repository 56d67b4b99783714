package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(gameID string, price string, qty int) CartLine {
	return CartLine{
		GameID: gameID,
		Name:   "Game " + gameID,
		Price:  decimal.RequireFromString(price),
		Qty:    qty,
	}
}

func TestCartAddNewLine(t *testing.T) {
	cart := NewCart()

	cart.Add(line("g1", "19.99", 2))

	assert.Equal(t, 1, len(cart.Lines))
	assert.Equal(t, 2, cart.Lines["g1"].Qty)
	assert.Equal(t, 2, cart.Count())
}

func TestCartAddExistingLineIncrementsQty(t *testing.T) {
	cart := NewCart()

	cart.Add(line("g1", "19.99", 1))
	cart.Add(line("g1", "19.99", 2))

	assert.Equal(t, 1, len(cart.Lines))
	assert.Equal(t, 3, cart.Lines["g1"].Qty)
}

func TestCartUpdateSetsQty(t *testing.T) {
	cart := NewCart()
	cart.Add(line("g1", "19.99", 1))

	cart.Update("g1", 5)

	assert.Equal(t, 5, cart.Lines["g1"].Qty)
}

func TestCartUpdateAbsentLineIsNoop(t *testing.T) {
	cart := NewCart()

	cart.Update("nope", 5)

	assert.True(t, cart.IsEmpty())
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(line("g1", "19.99", 1))
	cart.Add(line("g2", "9.99", 1))

	cart.Remove("g1")
	cart.Remove("absent")

	assert.Equal(t, 1, len(cart.Lines))
	assert.Contains(t, cart.Lines, "g2")
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(line("g1", "19.99", 1))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
}

func TestCartTotalUsesSnapshotPrices(t *testing.T) {
	cart := NewCart()
	cart.Add(line("g1", "19.99", 2))
	cart.Add(line("g2", "5.50", 1))

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("45.48")),
		"got %s", cart.Total())
}

func TestCartTotalEmpty(t *testing.T) {
	cart := NewCart()
	assert.True(t, cart.Total().IsZero())
}
