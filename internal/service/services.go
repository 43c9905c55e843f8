package service

import (
	"github.com/deppfellow/catalog-service/internal/lib/job"
	"github.com/deppfellow/catalog-service/internal/repository"
	"github.com/deppfellow/catalog-service/internal/server"
)

type Services struct {
	Users  *UserService
	Items  *ItemService
	Orders *OrderService
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:  NewUserService(s, repos.Users),
		Items:  NewItemService(s, repos.Items),
		Orders: NewOrderService(s, repos.Orders, repos.Statuses),
		Job:    s.Job,
	}, nil
}
