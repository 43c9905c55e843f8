package repository

import (
	"context"

	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// StatusesRepository reads the order status lookup table.
//
// Statuses are seeded by migration and referenced by orders with a
// restrict-delete rule; the API exposes them read-only.
type StatusesRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewStatusesRepository constructs a StatusesRepository on the shared pool.
func NewStatusesRepository(s *server.Server) *StatusesRepository {
	return &StatusesRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// List returns all order statuses ordered by id.
func (r *StatusesRepository) List(ctx context.Context) ([]OrderStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT status_id, status_description
		 FROM order_statuses
		 ORDER BY status_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := []OrderStatus{}
	for rows.Next() {
		var st OrderStatus
		if err := rows.Scan(&st.StatusID, &st.StatusDescription); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}

	return statuses, rows.Err()
}
