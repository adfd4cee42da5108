package entity

type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Phone        string `db:"phone"`
	IsAdmin      bool   `db:"is_admin"`
	Street       string `db:"street"`
	Apartment    string `db:"apartment"`
	Zip          string `db:"zip"`
	City         string `db:"city"`
	Country      string `db:"country"`
}
