package usecase

import (
	"context"
	"fmt"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, log *zap.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		log:       log.With(zap.String("service", "stats")),
	}
}

// GetStats counts every table once, the four tables in parallel.
func (s *statsService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	var users, shops, events, services repository.StatusCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.statsRepo.CountUsersByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		shops, err = s.statsRepo.CountShopsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.statsRepo.CountEventsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		services, err = s.statsRepo.CountServicesByStatus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	usersTotal := users.Total()
	usersActive := users[string(entity.UserStatusActive)]
	servicesTotal := services.Total()
	servicesAvailable := services[string(entity.ServiceStatusAvailable)]

	return &response.StatsResponse{
		Users: response.UserStats{
			Total:   usersTotal,
			Active:  usersActive,
			Blocked: usersTotal - usersActive,
		},
		Shops: response.ShopStats{
			Total:    shops.Total(),
			Active:   shops[string(entity.ShopStatusActive)],
			Inactive: shops[string(entity.ShopStatusInactive)],
			Pending:  shops[string(entity.ShopStatusPending)],
		},
		Events: response.EventStats{
			Total:     events.Total(),
			Upcoming:  events[string(entity.EventStatusUpcoming)],
			Ongoing:   events[string(entity.EventStatusOngoing)],
			Completed: events[string(entity.EventStatusCompleted)],
			Cancelled: events[string(entity.EventStatusCancelled)],
		},
		Services: response.ServiceStats{
			Total:       servicesTotal,
			Available:   servicesAvailable,
			Unavailable: servicesTotal - servicesAvailable,
		},
	}, nil
}
