package models

import "github.com/shopspring/decimal"

// CartLine is one (game, quantity) pair in a visitor's cart. Price, name and
// image are snapshots taken when the line was added; checkout re-reads the
// authoritative stock but charges the snapshot price.
type CartLine struct {
	GameID string
	Name   string
	Slug   string
	Image  string
	Price  decimal.Decimal
	Qty    int
}

// Cart lives only in the visitor's session cookie. It is never written to the
// database; every handler loads it, mutates it and saves it back.
type Cart struct {
	Lines map[string]CartLine
}

func NewCart() *Cart {
	return &Cart{Lines: map[string]CartLine{}}
}

func (c *Cart) Add(line CartLine) {
	if c.Lines == nil {
		c.Lines = map[string]CartLine{}
	}
	if existing, ok := c.Lines[line.GameID]; ok {
		existing.Qty += line.Qty
		c.Lines[line.GameID] = existing
		return
	}
	c.Lines[line.GameID] = line
}

// Update sets the quantity of an existing line. Lines that are not in the
// cart are left alone.
func (c *Cart) Update(gameID string, qty int) {
	line, ok := c.Lines[gameID]
	if !ok {
		return
	}
	line.Qty = qty
	c.Lines[gameID] = line
}

func (c *Cart) Remove(gameID string) {
	delete(c.Lines, gameID)
}

func (c *Cart) Clear() {
	c.Lines = map[string]CartLine{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Count() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Qty
	}
	return total
}

// Total sums price × qty over all lines using the snapshot prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return total
}
