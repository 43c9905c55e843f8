package service

import (
	"context"

	"github.com/deppfellow/catalog-service/internal/lib/job"
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
	"github.com/rs/zerolog"
)

// UsersStore is the slice of the users repository the service consumes.
type UsersStore interface {
	List(ctx context.Context) ([]repository.User, error)
	Get(ctx context.Context, id int64) (*repository.User, error)
	Create(ctx context.Context, u repository.User) (*repository.User, error)
	Update(ctx context.Context, id int64, u repository.User) (*repository.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService implements user business operations on top of a UsersStore.
type UserService struct {
	users UsersStore
	job   *job.JobService
	log   *zerolog.Logger
}

func NewUserService(s *server.Server, users UsersStore) *UserService {
	return &UserService{
		users: users,
		job:   s.Job,
		log:   s.Logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]repository.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*repository.User, error) {
	return s.users.Get(ctx, id)
}

// Create stores the user and enqueues a welcome email. The email is
// best-effort: an enqueue failure is logged and the create still
// succeeds, since the user row is already committed.
func (s *UserService) Create(ctx context.Context, u repository.User) (*repository.User, error) {
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(created)

	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int64, u repository.User) (*repository.User, error) {
	return s.users.Update(ctx, id, u)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) enqueueWelcomeEmail(u *repository.User) {
	if s.job == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(u.UserEmail, u.UserName)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", u.UserID).Msg("Failed to build welcome email task")
		return
	}

	if _, err := s.job.Client.Enqueue(task); err != nil {
		s.log.Error().Err(err).Int64("user_id", u.UserID).Msg("Failed to enqueue welcome email task")
	}
}
