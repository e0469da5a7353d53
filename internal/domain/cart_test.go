package domain

import (
	"math"
	"testing"
)

func line(id int, name string, price float64, qty int) CartLine {
	return CartLine{ItemID: id, Name: name, UnitPrice: price, Quantity: qty}
}

func TestCartAddItemMergesByID(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(line(1, "Chicken Biryani", 10.00, 1))
	cart.AddItem(line(1, "Chicken Biryani", 10.00, 1))
	cart.AddItem(line(2, "Naan", 5.00, 1))

	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Errorf("expected merged quantity 2, got %d", cart.Lines[0].Quantity)
	}
	if got := cart.Total(); math.Abs(got-25.00) > 1e-9 {
		t.Errorf("expected total 25.00, got %.2f", got)
	}
	if got := cart.Count(); got != 3 {
		t.Errorf("expected count 3, got %d", got)
	}
}

func TestCartAddItemIgnoresRequestedQuantity(t *testing.T) {
	cart := &Cart{}

	// New lines always start at quantity one regardless of the input.
	cart.AddItem(line(1, "Seekh Kebab", 8.00, 5))

	if cart.Lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cart.Lines[0].Quantity)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		delta     int
		wantLines int
		wantQty   int
	}{
		{name: "increment", delta: 1, wantLines: 1, wantQty: 3},
		{name: "decrement", delta: -1, wantLines: 1, wantQty: 1},
		{name: "to zero removes line", delta: -2, wantLines: 0},
		{name: "below zero removes line", delta: -10, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{Lines: []CartLine{line(1, "Karahi", 15.00, 2)}}
			cart.UpdateQuantity(1, tt.delta)

			if len(cart.Lines) != tt.wantLines {
				t.Fatalf("expected %d lines, got %d", tt.wantLines, len(cart.Lines))
			}
			if tt.wantLines > 0 && cart.Lines[0].Quantity != tt.wantQty {
				t.Errorf("expected quantity %d, got %d", tt.wantQty, cart.Lines[0].Quantity)
			}
		})
	}
}

func TestCartUpdateQuantityUnknownItemIsNoOp(t *testing.T) {
	cart := &Cart{Lines: []CartLine{line(1, "Karahi", 15.00, 2)}}

	cart.UpdateQuantity(99, 1)

	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Errorf("unexpected mutation: %+v", cart.Lines)
	}
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		line(1, "Karahi", 15.00, 2),
		line(2, "Naan", 5.00, 1),
	}}

	cart.RemoveItem(1)
	if len(cart.Lines) != 1 || cart.Lines[0].ItemID != 2 {
		t.Fatalf("expected only item 2 left, got %+v", cart.Lines)
	}

	// Removing twice is a no-op.
	cart.RemoveItem(1)
	if len(cart.Lines) != 1 {
		t.Errorf("repeat removal changed the cart: %+v", cart.Lines)
	}
}

func TestCartClear(t *testing.T) {
	cart := &Cart{Lines: []CartLine{line(1, "Karahi", 15.00, 2)}}

	cart.Clear()

	if !cart.IsEmpty() {
		t.Error("expected cart to be empty after clear")
	}
	if cart.Total() != 0 || cart.Count() != 0 {
		t.Errorf("expected zero totals, got total=%.2f count=%d", cart.Total(), cart.Count())
	}
}

// The derived totals must stay consistent with the lines after any sequence
// of operations.
func TestCartTotalsStayConsistent(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(line(1, "Biryani", 10.00, 1))
	cart.AddItem(line(2, "Lassi", 3.50, 1))
	cart.AddItem(line(1, "Biryani", 10.00, 1))
	cart.UpdateQuantity(2, 2)
	cart.RemoveItem(1)
	cart.AddItem(line(3, "Haleem", 12.00, 1))
	cart.UpdateQuantity(3, -1)

	wantTotal, wantCount := 0.0, 0
	for _, l := range cart.Lines {
		wantTotal += l.UnitPrice * float64(l.Quantity)
		wantCount += l.Quantity
	}

	if got := cart.Total(); math.Abs(got-wantTotal) > 1e-9 {
		t.Errorf("total mismatch: got %.2f, want %.2f", got, wantTotal)
	}
	if got := cart.Count(); got != wantCount {
		t.Errorf("count mismatch: got %d, want %d", got, wantCount)
	}
}
