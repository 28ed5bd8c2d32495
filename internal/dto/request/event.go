package request

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// Dates are RFC 3339 timestamps.
type EventRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description *string    `json:"description,omitempty"`
	Location    string     `json:"location" validate:"required,min=1,max=300"`
	StartDate   *time.Time `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate" validate:"required"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type EventUpdateRequest struct {
	Title       *string                   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description nullable.Nullable[string] `json:"description"`
	Location    *string                   `json:"location,omitempty" validate:"omitempty,min=1,max=300"`
	StartDate   *time.Time                `json:"startDate,omitempty"`
	EndDate     *time.Time                `json:"endDate,omitempty"`
	Status      *string                   `json:"status,omitempty" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}
