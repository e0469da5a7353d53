package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/adapter/mailer"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

var ErrEmptyCart = errors.New("cannot checkout an empty cart")

// Service converts a cart and a delivery form into a persisted order. The
// header, lines and status log are written in one transaction; event
// publishing and the confirmation email are best-effort.
type Service struct {
	orders    interfaces.OrderRepository
	carts     interfaces.CartService
	publisher interfaces.EventPublisher
	mailer    interfaces.Mailer
	logger    logger.Logger
}

func NewService(
	orders interfaces.OrderRepository,
	carts interfaces.CartService,
	publisher interfaces.EventPublisher,
	m interfaces.Mailer,
	logger logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		carts:     carts,
		publisher: publisher,
		mailer:    m,
		logger:    logger,
	}
}

func (s *Service) PlaceOrder(ctx context.Context, cmd interfaces.PlaceOrderCommand) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, cmd.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(cart.Lines))
	for i, line := range cart.Lines {
		items[i] = domain.OrderItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		}
	}

	order, err := domain.NewOrder(
		cmd.CustomerName, cmd.Email, cmd.Phone, cmd.Address, cmd.City,
		domain.PaymentMethod(cmd.PaymentMethod), cmd.PaymentRef, items,
	)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", cmd.CartID, nil, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	number, err := s.orders.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}
	order.Number = number

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", order.Number, nil, err)
		return nil, err
	}
	s.logger.Debug("order_created", "Order created in DB", order.Number, map[string]interface{}{
		"order_number": order.Number,
		"total":        order.TotalAmount,
		"items":        len(order.Items),
	})

	event := interfaces.AdminEvent{
		Table:     "orders",
		Ref:       order.Number,
		Summary:   fmt.Sprintf("New order from %s", order.CustomerName),
		Amount:    order.TotalAmount,
		CreatedAt: order.CreatedAt,
	}
	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		// Alerting must never fail the checkout.
		s.logger.Error("event_publish_failed", "Failed to publish order event", order.Number, nil, err)
	}

	msg := mailer.RenderOrderConfirmation(order)
	if _, err := s.mailer.Send(ctx, msg); err != nil {
		// Same for the confirmation email: log and move on.
		s.logger.Error("email_dispatch_failed", "Failed to send order confirmation", order.Number, nil, err)
	}

	if err := s.carts.Clear(ctx, cmd.CartID); err != nil {
		s.logger.Error("cart_clear_failed", "Order placed but cart not cleared", order.Number, nil, err)
	}

	return order, nil
}

// GetOrder returns an order with its lines for the tracking page.
func (s *Service) GetOrder(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.FindByNumber(ctx, number)
}

// GetOrderHistory returns the status log for an order.
func (s *Service) GetOrderHistory(ctx context.Context, number string) ([]*domain.StatusLog, error) {
	order, err := s.orders.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.orders.GetStatusHistory(ctx, order.ID)
}

// ListOrders returns orders for the admin panel, optionally filtered by
// status.
func (s *Service) ListOrders(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return s.orders.List(ctx, status)
}

// UpdateOrderStatus applies an admin status change, enforcing the transition
// table and logging the change.
func (s *Service) UpdateOrderStatus(ctx context.Context, number string, newStatus domain.OrderStatus, changedBy string) (*domain.Order, error) {
	order, err := s.orders.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(newStatus); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatusWithLog(ctx, order, changedBy); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}
