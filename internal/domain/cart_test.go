package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pizza() Product {
	return Product{
		ID:             1,
		RestaurantID:   7,
		NameRu:         "Пицца",
		NameUz:         "Pitsa",
		Unit:           "шт",
		Price:          dec("10000"),
		ContainerPrice: dec("500"),
		InStock:        true,
	}
}

func TestCart_AddMergesLines(t *testing.T) {
	c := NewCart(nil)
	c.Add(pizza())
	c.Add(pizza())

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, c.Count())
}

func TestCart_Totals(t *testing.T) {
	c := NewCart(nil)
	c.Add(pizza())
	c.Add(pizza())

	assert.True(t, dec("20000").Equal(c.ProductTotal()))
	assert.True(t, dec("1000").Equal(c.ContainerTotal()))
	assert.True(t, dec("21000").Equal(c.Total()))
}

func TestCart_TotalsAreExact(t *testing.T) {
	p := pizza()
	p.Price = dec("0.1")
	p.ContainerPrice = dec("0.2")

	c := NewCart(nil)
	for i := 0; i < 10; i++ {
		c.Add(p)
	}

	assert.True(t, dec("1").Equal(c.ProductTotal()))
	assert.True(t, dec("2").Equal(c.ContainerTotal()))
	assert.True(t, c.Total().Equal(c.ProductTotal().Add(c.ContainerTotal())))
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		q     int
		lines int
		count int
	}{
		{"set", 1, 5, 1, 5},
		{"zero removes", 1, 0, 0, 0},
		{"negative removes", 1, -3, 0, 0},
		{"unknown product", 42, 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart(nil)
			c.Add(pizza())

			c.UpdateQuantity(tt.id, tt.q)

			assert.Len(t, c.Lines(), tt.lines)
			assert.Equal(t, tt.count, c.Count())
			for _, l := range c.Lines() {
				assert.Positive(t, l.Quantity)
			}
		})
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	second := pizza()
	second.ID = 2

	c := NewCart(nil)
	c.Add(pizza())
	c.Add(second)

	c.Remove(42)
	assert.Len(t, c.Lines(), 2)

	c.Remove(1)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(2), c.Lines()[0].ProductID)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, decimal.Zero.Equal(c.Total()))
}

func TestCart_SnapshotIsolation(t *testing.T) {
	p := pizza()
	c := NewCart(nil)
	c.Add(p)

	p.Price = dec("99999")
	p.NameRu = "Другая пицца"
	c.Add(p)

	line, ok := c.Line(p.ID)
	require.True(t, ok)
	assert.True(t, dec("10000").Equal(line.Price))
	assert.Equal(t, "Пицца", line.NameRu)
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := NewCart(nil)
	c.Add(pizza())

	lines := c.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, 1, c.Count())
}

func TestNewCart_Normalizes(t *testing.T) {
	line := NewCartLine(pizza())
	zero := line
	zero.ProductID = 2
	zero.Quantity = 0

	c := NewCart([]CartLine{line, zero, line})

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Count())
}

func TestCart_RestaurantID(t *testing.T) {
	c := NewCart(nil)
	_, ok := c.RestaurantID()
	assert.False(t, ok)

	c.Add(pizza())
	id, ok := c.RestaurantID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}
