package entity

type Category struct {
	Base
	Name  string `db:"name"`
	Icon  string `db:"icon"`
	Color string `db:"color"`
}
