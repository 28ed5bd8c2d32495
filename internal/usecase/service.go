package usecase

import (
	"admin-panel/internal/data/repository"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Shop     ShopService
	Event    EventService
	Services ServicesService
	Stats    StatsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.Admin, config.JWT, log),
		User:     NewUserService(repo.User, log),
		Shop:     NewShopService(repo.Shop, log),
		Event:    NewEventService(repo.Event, log),
		Services: NewServicesService(repo.Service, log),
		Stats:    NewStatsService(repo.Stats, log),
	}
}
