package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// UsersRepository persists catalog users.
type UsersRepository struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

// NewUsersRepository constructs a UsersRepository on the shared pool.
func NewUsersRepository(s *server.Server) *UsersRepository {
	return &UsersRepository{
		pool: s.DB.Pool,
		log:  s.Logger,
	}
}

// List returns all users in store-native order. An empty slice is a
// valid, non-error result.
func (r *UsersRepository) List(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT user_id, user_name, user_last_name, user_email, password
		 FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.UserName, &u.UserLastName, &u.UserEmail, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Get looks a user up by primary key. A missing row is a distinct
// not-found error, never a zero-valued record.
func (r *UsersRepository) Get(ctx context.Context, id int64) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u User
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, user_name, user_last_name, user_email, password
		 FROM users
		 WHERE user_id = $1`, id).
		Scan(&u.UserID, &u.UserName, &u.UserLastName, &u.UserEmail, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("users")
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts a user and returns the record with its store-assigned
// identity.
func (r *UsersRepository) Create(ctx context.Context, u User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (user_name, user_last_name, user_email, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id`,
		u.UserName, u.UserLastName, u.UserEmail, u.Password).
		Scan(&u.UserID)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Update replaces all mutable fields of the row matching id and returns
// the updated record. A missing id reports not-found.
func (r *UsersRepository) Update(ctx context.Context, id int64, u User) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`UPDATE users
		 SET user_name = $2, user_last_name = $3, user_email = $4, password = $5
		 WHERE user_id = $1
		 RETURNING user_id`,
		id, u.UserName, u.UserLastName, u.UserEmail, u.Password).
		Scan(&u.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound("users")
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Delete removes the row matching id; the store cascades the delete to
// the user's orders. A missing id reports not-found.
func (r *UsersRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound("users")
	}

	return nil
}
