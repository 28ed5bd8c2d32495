package repository

import (
	"admin-panel/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Admin   AdminRepository
	User    UserRepository
	Shop    ShopRepository
	Event   EventRepository
	Service ServiceRepository
	Stats   StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:   NewAdminRepository(db, log),
		User:    NewUserRepository(db, log),
		Shop:    NewShopRepository(db, log),
		Event:   NewEventRepository(db, log),
		Service: NewServiceRepository(db, log),
		Stats:   NewStatsRepository(db, log),
	}
}
