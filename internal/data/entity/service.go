package entity

import "github.com/shopspring/decimal"

type ServiceStatus string

const (
	ServiceStatusAvailable   ServiceStatus = "available"
	ServiceStatusUnavailable ServiceStatus = "unavailable"
)

// Service is an offering listed in the back office, not a Go service.
type Service struct {
	Base
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Status      ServiceStatus   `db:"status"`
}
