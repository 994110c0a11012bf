package domain

// CartLine — одна позиция корзины: товар и его количество.
// Инвариант: quantity >= 1; позиция с нулевым количеством не хранится, а удаляется.
type CartLine struct {
	Product  Product
	Quantity int
}

// Cart — корзина сессии. Позиции хранятся в порядке первого добавления,
// на каждый товар — не более одной позиции.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem добавляет товар в корзину: существующая позиция увеличивается на единицу,
// отсутствующая добавляется в конец с количеством 1. Операция всегда успешна.
func (c *Cart) AddItem(p Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity устанавливает количество для позиции.
// Значения меньше единицы ограничиваются единицей: удаление — отдельная операция Remove.
// Возвращает false, если позиции с таким товаром нет.
func (c *Cart) UpdateQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove удаляет позицию. Возвращает false, если позиции не было.
func (c *Cart) Remove(productID string) bool {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear безусловно опустошает корзину.
func (c *Cart) Clear() {
	c.lines = nil
}

// ItemCount возвращает суммарное количество всех позиций (значение для бейджа корзины).
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Lines возвращает копию позиций корзины.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len возвращает число позиций.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
