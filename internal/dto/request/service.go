package request

import (
	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

// Price accepts a JSON number or a numeric string.
type ServiceRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	Category    string           `json:"category" validate:"required,min=1,max=100"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Status      string           `json:"status,omitempty" validate:"omitempty,oneof=available unavailable"`
}

type ServiceUpdateRequest struct {
	Name        *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description nullable.Nullable[string] `json:"description"`
	Category    *string                   `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal          `json:"price,omitempty"`
	Status      *string                   `json:"status,omitempty" validate:"omitempty,oneof=available unavailable"`
}
