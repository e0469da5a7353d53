package domain

// CartLine is one entry in a shopping cart, unique by item ID.
type CartLine struct {
	ItemID    int     `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Cart is the customer's in-progress selection before checkout. All
// operations are total functions over the line list.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem merges by item ID: an existing line gains one unit, otherwise the
// item is appended with quantity one.
func (c *Cart) AddItem(line CartLine) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == line.ItemID {
			c.Lines[i].Quantity++
			return
		}
	}
	line.Quantity = 1
	c.Lines = append(c.Lines, line)
}

// RemoveItem deletes the line matching the item ID; absent IDs are a no-op.
func (c *Cart) RemoveItem(itemID int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity adds delta to the matching line's quantity, clamped at zero.
// A line whose quantity reaches zero is removed.
func (c *Cart) UpdateQuantity(itemID, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// Clear empties the cart. Called after an order is successfully placed.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total is the sum of unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
