// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, or
// update catalog rows, abstracting SQL away from the service layer.
//
// Conventions shared by every repository:
//   - each method is a single statement against the pool; referential
//     integrity is the store's job (foreign keys, cascades)
//   - each query runs under an explicit per-query timeout
//   - "no matching row" is wrapped as "table:<name>: ErrNoRows" so the
//     sqlerr package can name the missing entity in the 404 response
//   - UPDATE/DELETE use RETURNING or RowsAffected so a missing id is
//     reported, never a silent no-op
package repository

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// queryTimeout bounds every single-statement catalog query. Requests
// inherit this rather than an implicit driver default.
const queryTimeout = 5 * time.Second

// notFound wraps pgx.ErrNoRows with the table name so error translation
// can produce "<Entity> not found".
func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

// User is a stored catalog user.
//
// Password intentionally never serializes: the column exists, but
// credential fields are excluded from every response shape.
type User struct {
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	UserLastName string `json:"user_last_name"`
	UserEmail    string `json:"user_email"`
	Password     string `json:"-"`
}

// Item is a stored catalog item.
type Item struct {
	ItemID          int64   `json:"item_id"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description"`
	ItemPrice       float64 `json:"item_price"`
}

// OrderStatus is a row of the order status lookup table.
type OrderStatus struct {
	StatusID          int64  `json:"status_id"`
	StatusDescription string `json:"status_description"`
}

// Order is a stored order referencing a user, an item and a status.
type Order struct {
	OrderID       int64     `json:"order_id"`
	UserID        int64     `json:"user_id"`
	ItemID        int64     `json:"item_id"`
	OrderDate     time.Time `json:"order_date"`
	OrderStatusID int64     `json:"order_status_id"`
}
