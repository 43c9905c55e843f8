package repository

import (
	"github.com/deppfellow/catalog-service/internal/server"
)

// Repositories is a container for all repository instances, so wiring
// passes one object around instead of four.
type Repositories struct {
	Users    *UsersRepository
	Items    *ItemsRepository
	Orders   *OrdersRepository
	Statuses *StatusesRepository
}

// NewRepositories constructs the repository container on top of the
// server's shared database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUsersRepository(s),
		Items:    NewItemsRepository(s),
		Orders:   NewOrdersRepository(s),
		Statuses: NewStatusesRepository(s),
	}
}
