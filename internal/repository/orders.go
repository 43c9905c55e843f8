package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// OrdersRepository persists orders.
//
// Orders reference users, items and statuses by foreign key; the store
// enforces that the referenced rows exist, so a write with an unknown
// user_id/item_id fails with a foreign key violation rather than being
// pre-validated here.
type OrdersRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewOrdersRepository constructs an OrdersRepository on the shared pool.
func NewOrdersRepository(s *server.Server) *OrdersRepository {
	return &OrdersRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// List returns all orders in store-native order.
func (r *OrdersRepository) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT order_id, user_id, item_id, order_date, order_status_id
		 FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ListByUser returns the orders whose user_id matches. A user with no
// orders (or an unknown user) yields an empty slice, not an error.
func (r *OrdersRepository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT order_id, user_id, item_id, order_date, order_status_id
		 FROM orders
		 WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.ItemID, &o.OrderDate, &o.OrderStatusID); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Get looks an order up by primary key.
func (r *OrdersRepository) Get(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o Order
	err := r.pool.QueryRow(ctx,
		`SELECT order_id, user_id, item_id, order_date, order_status_id
		 FROM orders
		 WHERE order_id = $1`, id).
		Scan(&o.OrderID, &o.UserID, &o.ItemID, &o.OrderDate, &o.OrderStatusID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("orders")
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// Create inserts an order and returns the record with its identity and
// the values the store settled on. A nil orderDate defaults to now(), a
// nil statusID to status 1, mirroring the column defaults in one
// statement.
func (r *OrdersRepository) Create(ctx context.Context, userID, itemID int64, orderDate *time.Time, statusID *int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o Order
	err := r.pool.QueryRow(ctx,
		`INSERT INTO orders (user_id, item_id, order_date, order_status_id)
		 VALUES ($1, $2, COALESCE($3::timestamptz, now()), COALESCE($4::bigint, 1))
		 RETURNING order_id, user_id, item_id, order_date, order_status_id`,
		userID, itemID, orderDate, statusID).
		Scan(&o.OrderID, &o.UserID, &o.ItemID, &o.OrderDate, &o.OrderStatusID)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// Update replaces all mutable fields of the row matching id, applying
// the same defaults as Create for omitted date/status (full-record
// replace semantics). A missing id reports not-found.
func (r *OrdersRepository) Update(ctx context.Context, id, userID, itemID int64, orderDate *time.Time, statusID *int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var o Order
	err := r.pool.QueryRow(ctx,
		`UPDATE orders
		 SET user_id = $2, item_id = $3,
		     order_date = COALESCE($4::timestamptz, now()),
		     order_status_id = COALESCE($5::bigint, 1)
		 WHERE order_id = $1
		 RETURNING order_id, user_id, item_id, order_date, order_status_id`,
		id, userID, itemID, orderDate, statusID).
		Scan(&o.OrderID, &o.UserID, &o.ItemID, &o.OrderDate, &o.OrderStatusID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("orders")
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// Delete removes the row matching id. A missing id reports not-found.
func (r *OrdersRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("orders")
	}

	return nil
}
