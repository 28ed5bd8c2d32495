package entity

type ShopStatus string

const (
	ShopStatusActive   ShopStatus = "active"
	ShopStatusInactive ShopStatus = "inactive"
	ShopStatusPending  ShopStatus = "pending"
)

type Shop struct {
	Base
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Address     string     `db:"address"`
	Phone       string     `db:"phone"`
	Email       *string    `db:"email"`
	Status      ShopStatus `db:"status"`
}
