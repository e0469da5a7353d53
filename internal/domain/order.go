package domain

import (
	"errors"
	"strings"
	"time"
)

// Order is a persisted customer order.
type Order struct {
	ID            int
	Number        string
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	PaymentMethod PaymentMethod
	PaymentRef    *string
	Items         []OrderItem
	TotalAmount   float64
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID         int
	OrderID    int
	MenuItemID int
	Name       string
	Quantity   int
	UnitPrice  float64
}

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyOrder              = errors.New("order must have at least one item")
)

// NewOrder builds a validated order in the pending state with its total
// computed from the items.
func NewOrder(customerName, email, phone, address, city string, method PaymentMethod, paymentRef *string, items []OrderItem) (*Order, error) {
	now := time.Now()
	order := &Order{
		CustomerName:  strings.TrimSpace(customerName),
		Email:         strings.TrimSpace(email),
		Phone:         strings.TrimSpace(phone),
		Address:       strings.TrimSpace(address),
		City:          strings.TrimSpace(city),
		PaymentMethod: method,
		PaymentRef:    paymentRef,
		Items:         items,
		Status:        OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	order.CalculateTotal()
	return order, nil
}

// Validate applies business validation rules.
func (o *Order) Validate() error {
	if len(o.CustomerName) < 1 || len(o.CustomerName) > 100 {
		return errors.New("customer name must be 1-100 characters")
	}
	if !strings.Contains(o.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if len(o.Phone) < 7 {
		return errors.New("a valid phone number is required")
	}
	if len(o.Address) < 10 {
		return errors.New("delivery address must be at least 10 characters")
	}
	if o.PaymentMethod != PaymentCard && o.PaymentMethod != PaymentCash {
		return errors.New("payment method must be card or cash")
	}
	if o.PaymentMethod == PaymentCard && (o.PaymentRef == nil || *o.PaymentRef == "") {
		return errors.New("payment reference required for card orders")
	}
	if len(o.Items) < 1 {
		return ErrEmptyOrder
	}
	if len(o.Items) > 50 {
		return errors.New("order must not exceed 50 items")
	}
	for _, item := range o.Items {
		if len(item.Name) < 1 || len(item.Name) > 100 {
			return errors.New("item name must be 1-100 characters")
		}
		if item.Quantity < 1 {
			return errors.New("item quantity must be at least 1")
		}
		if item.UnitPrice <= 0 {
			return errors.New("item price must be positive")
		}
	}
	return nil
}

// CalculateTotal recomputes the total amount from the items.
func (o *Order) CalculateTotal() {
	total := 0.0
	for _, item := range o.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	o.TotalAmount = total
}

// TransitionTo moves the order to a new status when the transition table
// allows it.
func (o *Order) TransitionTo(newStatus OrderStatus) error {
	if !o.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}
	o.Status = newStatus
	o.UpdatedAt = time.Now()
	return nil
}

// CanTransitionTo checks the order status transition table.
func (o *Order) CanTransitionTo(newStatus OrderStatus) bool {
	validTransitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusDelivered, OrderStatusCancelled},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}

	for _, s := range validTransitions[o.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}
