package response

import (
	"time"

	"admin-panel/internal/data/entity"
)

type ShopResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Email       *string           `json:"email"`
	Status      entity.ShopStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:          shop.ID.String(),
		Name:        shop.Name,
		Description: shop.Description,
		Address:     shop.Address,
		Phone:       shop.Phone,
		Email:       shop.Email,
		Status:      shop.Status,
		CreatedAt:   shop.CreatedAt,
		UpdatedAt:   shop.UpdatedAt,
	}
}
