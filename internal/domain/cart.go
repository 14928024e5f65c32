package domain

import "github.com/shopspring/decimal"

// CartLine — снимок товара на момент добавления в корзину.
// Последующие изменения товара в каталоге на строку не влияют.
type CartLine struct {
	ProductID      int64
	RestaurantID   int64
	NameRu         string
	NameUz         string
	Unit           string
	Price          decimal.Decimal
	ContainerPrice decimal.Decimal
	ImageURL       string
	Quantity       int
}

// NewCartLine снимает копию полей товара с количеством 1.
func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID:      p.ID,
		RestaurantID:   p.RestaurantID,
		NameRu:         p.NameRu,
		NameUz:         p.NameUz,
		Unit:           p.Unit,
		Price:          p.Price,
		ContainerPrice: p.ContainerPrice,
		ImageURL:       p.ImageURL,
		Quantity:       1,
	}
}

func (l CartLine) Title(lang Language) string {
	return localized(lang, l.NameRu, l.NameUz)
}

// Subtotal — цена товара с тарой за всю строку.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Add(l.ContainerPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart — корзина одной сессии. Строки уникальны по ProductID, количество всегда больше нуля.
type Cart struct {
	lines []CartLine
}

// NewCart восстанавливает корзину из сохранённых строк: строки с количеством <= 0
// отбрасываются, повторы одного товара склеиваются.
func NewCart(lines []CartLine) *Cart {
	c := &Cart{lines: make([]CartLine, 0, len(lines))}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.ProductID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}

	return c
}

// Lines возвращает копию строк в порядке добавления.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line возвращает строку по id товара.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}

	return CartLine{}, false
}

// Add увеличивает количество на 1 или добавляет снимок товара новой строкой.
func (c *Cart) Add(p Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}

	c.lines = append(c.lines, NewCartLine(p))
}

// UpdateQuantity выставляет количество; q <= 0 удаляет строку. Отсутствующий товар игнорируется.
func (c *Cart) UpdateQuantity(productID int64, q int) {
	if q <= 0 {
		c.Remove(productID)
		return
	}

	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = q
	}
}

func (c *Cart) Remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count — суммарное количество единиц товара.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}

	return n
}

// ProductTotal — Σ price × quantity.
func (c *Cart) ProductTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return total
}

// ContainerTotal — Σ container_price × quantity.
func (c *Cart) ContainerTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.ContainerPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return total
}

func (c *Cart) Total() decimal.Decimal {
	return c.ProductTotal().Add(c.ContainerTotal())
}

// RestaurantID возвращает ресторан первой строки.
func (c *Cart) RestaurantID() (int64, bool) {
	if len(c.lines) == 0 {
		return 0, false
	}

	return c.lines[0].RestaurantID, true
}

func (c *Cart) index(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}

	return -1
}
