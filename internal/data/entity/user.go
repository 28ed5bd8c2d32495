package entity

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// Toggled returns the opposite status; anything that is not active becomes active.
func (s UserStatus) Toggled() UserStatus {
	if s == UserStatusActive {
		return UserStatusBlocked
	}
	return UserStatusActive
}

type User struct {
	Base
	Email  string     `db:"email"`
	Name   string     `db:"name"`
	Phone  *string    `db:"phone"`
	Status UserStatus `db:"status"`
}
