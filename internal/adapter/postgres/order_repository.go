package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header, every order line and the initial status
// log entry in a single transaction, so a failed line insert never leaves an
// orphaned header behind.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (number, customer_name, email, phone, address, city,
		                    payment_method, payment_ref, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		order.Number, order.CustomerName, order.Email, order.Phone, order.Address, order.City,
		order.PaymentMethod, order.PaymentRef, order.TotalAmount, order.Status, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		itemQuery := `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err = tx.QueryRow(ctx, itemQuery,
			order.ID, order.Items[i].MenuItemID, order.Items[i].Name,
			order.Items[i].Quantity, order.Items[i].UnitPrice, time.Now(),
		).Scan(&order.Items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		order.Items[i].OrderID = order.ID
	}

	logQuery := `
		INSERT INTO order_status_log (order_id, status, changed_by, changed_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.Exec(ctx, logQuery, order.ID, order.Status, "checkout", time.Now())
	if err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	query := `
		SELECT id, number, customer_name, email, phone, address, city,
		       payment_method, payment_ref, total_amount, status, created_at, updated_at
		FROM orders
		WHERE number = $1
	`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, number).Scan(
		&order.ID, &order.Number, &order.CustomerName, &order.Email, &order.Phone,
		&order.Address, &order.City, &order.PaymentMethod, &order.PaymentRef,
		&order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, menu_item_id, name, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id
	`
	rows, err := r.db.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}

	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	query := `
		SELECT id, number, customer_name, email, phone, address, city,
		       payment_method, payment_ref, total_amount, status, created_at, updated_at
		FROM orders
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.Number, &order.CustomerName, &order.Email, &order.Phone,
			&order.Address, &order.City, &order.PaymentMethod, &order.PaymentRef,
			&order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

// GenerateOrderNumber reserves the next number for today. The per-day
// counter row is bumped with an atomic upsert, so two concurrent checkouts
// never compute the same number.
func (r *orderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO order_counters (day, counter)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter
	`

	var seq int
	err := r.db.QueryRow(ctx, query, now.Format("2006-01-02")).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("failed to reserve order number: %w", err)
	}

	return fmt.Sprintf("ORD_%s_%03d", now.Format("20060102"), seq), nil
}

func (r *orderRepository) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		order.Status, order.UpdatedAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_log (order_id, status, changed_by, changed_at) VALUES ($1, $2, $3, $4)`,
		order.ID, order.Status, changedBy, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error) {
	query := `
		SELECT id, order_id, status, changed_by, changed_at
		FROM order_status_log
		WHERE order_id = $1
		ORDER BY changed_at ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var logs []*domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(&log.ID, &log.OrderID, &log.Status, &log.ChangedBy, &log.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status log: %w", err)
		}
		logs = append(logs, &log)
	}

	return logs, nil
}

func (r *orderRepository) TopOrderedItems(ctx context.Context, limit int) ([]interfaces.ItemCount, error) {
	query := `
		SELECT name, COUNT(*) AS cnt
		FROM order_items
		GROUP BY name
		ORDER BY cnt DESC, name ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top items: %w", err)
	}
	defer rows.Close()

	var items []interfaces.ItemCount
	for rows.Next() {
		var item interfaces.ItemCount
		if err := rows.Scan(&item.Name, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan item count: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}
