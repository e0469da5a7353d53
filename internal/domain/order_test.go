package domain

import (
	"errors"
	"testing"
	"time"
)

func validItems() []OrderItem {
	return []OrderItem{
		{MenuItemID: 1, Name: "Chicken Biryani", Quantity: 2, UnitPrice: 10.00},
		{MenuItemID: 2, Name: "Naan", Quantity: 1, UnitPrice: 5.00},
	}
}

func TestNewOrderComputesTotal(t *testing.T) {
	order, err := NewOrder("Ali Khan", "ali@example.com", "03001234567", "House 12, Street 5, Gulberg", "Lahore", PaymentCash, nil, validItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.TotalAmount != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", order.TotalAmount)
	}
	if order.Status != OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
}

func TestOrderValidate(t *testing.T) {
	ref := "pi_123_secret"

	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr bool
	}{
		{name: "valid cash order", mutate: func(o *Order) {}},
		{name: "valid card order", mutate: func(o *Order) {
			o.PaymentMethod = PaymentCard
			o.PaymentRef = &ref
		}},
		{name: "empty name", mutate: func(o *Order) { o.CustomerName = "" }, wantErr: true},
		{name: "bad email", mutate: func(o *Order) { o.Email = "not-an-email" }, wantErr: true},
		{name: "short phone", mutate: func(o *Order) { o.Phone = "123" }, wantErr: true},
		{name: "short address", mutate: func(o *Order) { o.Address = "short" }, wantErr: true},
		{name: "unknown payment method", mutate: func(o *Order) { o.PaymentMethod = "bitcoin" }, wantErr: true},
		{name: "card without reference", mutate: func(o *Order) { o.PaymentMethod = PaymentCard }, wantErr: true},
		{name: "no items", mutate: func(o *Order) { o.Items = nil }, wantErr: true},
		{name: "zero quantity item", mutate: func(o *Order) { o.Items[0].Quantity = 0 }, wantErr: true},
		{name: "free item", mutate: func(o *Order) { o.Items[0].UnitPrice = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{
				CustomerName:  "Ali Khan",
				Email:         "ali@example.com",
				Phone:         "03001234567",
				Address:       "House 12, Street 5, Gulberg",
				City:          "Lahore",
				PaymentMethod: PaymentCash,
				Items:         validItems(),
			}
			tt.mutate(order)

			err := order.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusDelivered, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			order := &Order{Status: tt.from}
			err := order.TransitionTo(tt.to)

			if tt.allowed {
				if err != nil {
					t.Errorf("expected transition to succeed, got %v", err)
				}
				if order.Status != tt.to {
					t.Errorf("status not updated, got %s", order.Status)
				}
			} else {
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Errorf("expected ErrInvalidStatusTransition, got %v", err)
				}
				if order.Status != tt.from {
					t.Errorf("status mutated on rejected transition, got %s", order.Status)
				}
			}
		})
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	r := &Reservation{Status: ReservationPending}

	if err := r.TransitionTo(ReservationConfirmed); err != nil {
		t.Fatalf("pending -> confirmed should be allowed: %v", err)
	}
	if err := r.TransitionTo(ReservationCancelled); err != nil {
		t.Fatalf("confirmed -> cancelled should be allowed: %v", err)
	}
	if err := r.TransitionTo(ReservationPending); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("cancelled is terminal, got %v", err)
	}
}

func TestDealIsActive(t *testing.T) {
	now := time.Now()

	// Zero bounds mean open-ended.
	d := &Deal{Title: "Family Feast"}
	if !d.IsActive(now) {
		t.Error("open-ended deal should be active")
	}
	d.StartsAt = now.AddDate(0, 0, 1)
	if d.IsActive(now) {
		t.Error("deal starting tomorrow should not be active")
	}

	d.StartsAt = now.AddDate(0, 0, -2)
	d.EndsAt = now.AddDate(0, 0, -1)
	if d.IsActive(now) {
		t.Error("expired deal should not be active")
	}
}
