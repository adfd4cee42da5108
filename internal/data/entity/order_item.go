package entity

import "github.com/google/uuid"

// OrderItem captures the product price at order time in UnitPrice;
// later product price changes never touch a placed order.
type OrderItem struct {
	BaseSimple
	OrderID   uuid.UUID `db:"order_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
	UnitPrice float64   `db:"unit_price"`
}
