package request

import "github.com/oapi-codegen/nullable"

type UserRequest struct {
	Email  string  `json:"email" validate:"required,email,max=255"`
	Name   string  `json:"name" validate:"required,min=1,max=100"`
	Phone  *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Status string  `json:"status,omitempty" validate:"omitempty,oneof=active blocked"`
}

type UserUpdateRequest struct {
	Email  *string                   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Name   *string                   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone  nullable.Nullable[string] `json:"phone"`
	Status *string                   `json:"status,omitempty" validate:"omitempty,oneof=active blocked"`
}
