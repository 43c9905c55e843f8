package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ItemsRepository persists catalog items.
type ItemsRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewItemsRepository constructs an ItemsRepository on the shared pool.
func NewItemsRepository(s *server.Server) *ItemsRepository {
	return &ItemsRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// List returns all items in store-native order.
func (r *ItemsRepository) List(ctx context.Context) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT item_id, item_name, item_description, item_price
		 FROM items`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ItemID, &it.ItemName, &it.ItemDescription, &it.ItemPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// Get looks an item up by primary key.
func (r *ItemsRepository) Get(ctx context.Context, id int64) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var it Item
	err := r.pool.QueryRow(ctx,
		`SELECT item_id, item_name, item_description, item_price
		 FROM items
		 WHERE item_id = $1`, id).
		Scan(&it.ItemID, &it.ItemName, &it.ItemDescription, &it.ItemPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("items")
	}
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// Create inserts an item and returns the record with its identity.
func (r *ItemsRepository) Create(ctx context.Context, it Item) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO items (item_name, item_description, item_price)
		 VALUES ($1, $2, $3)
		 RETURNING item_id`,
		it.ItemName, it.ItemDescription, it.ItemPrice).
		Scan(&it.ItemID)
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// Update replaces all mutable fields of the row matching id.
func (r *ItemsRepository) Update(ctx context.Context, id int64, it Item) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`UPDATE items
		 SET item_name = $2, item_description = $3, item_price = $4
		 WHERE item_id = $1
		 RETURNING item_id`,
		id, it.ItemName, it.ItemDescription, it.ItemPrice).
		Scan(&it.ItemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("items")
	}
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// Delete removes the row matching id; the store cascades the delete to
// orders referencing the item.
func (r *ItemsRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("items")
	}

	return nil
}
