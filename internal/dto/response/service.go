package response

import (
	"time"

	"admin-panel/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description *string              `json:"description"`
	Category    string               `json:"category"`
	Price       decimal.Decimal      `json:"price"`
	Status      entity.ServiceStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		Price:       service.Price,
		Status:      service.Status,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}
