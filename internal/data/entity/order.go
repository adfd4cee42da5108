package entity

import "github.com/google/uuid"

// OrderStatusPending is the initial status. Status is a free-form label
// after that; admins may set any string and no transition is validated.
const OrderStatusPending = "Pending"

type Order struct {
	Base
	UserID           uuid.UUID `db:"user_id"`
	ShippingAddress1 string    `db:"shipping_address1"`
	ShippingAddress2 string    `db:"shipping_address2"`
	City             string    `db:"city"`
	Zip              string    `db:"zip"`
	Country          string    `db:"country"`
	Phone            string    `db:"phone"`
	TotalPrice       float64   `db:"total_price"`
	Status           string    `db:"status"`
	Items            []*OrderItem
}
