package entity

type Admin struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Name         string `db:"name"`
}
