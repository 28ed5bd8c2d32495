package request

import "github.com/oapi-codegen/nullable"

type ShopRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address" validate:"required,min=1,max=300"`
	Phone       string  `json:"phone" validate:"required,min=1,max=30"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}

type ShopUpdateRequest struct {
	Name        *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description nullable.Nullable[string] `json:"description"`
	Address     *string                   `json:"address,omitempty" validate:"omitempty,min=1,max=300"`
	Phone       *string                   `json:"phone,omitempty" validate:"omitempty,min=1,max=30"`
	Email       nullable.Nullable[string] `json:"email"`
	Status      *string                   `json:"status,omitempty" validate:"omitempty,oneof=active inactive pending"`
}
