package entity

import "github.com/google/uuid"

// CartItem is one (product, quantity) line of a cart. A cart holds at most
// one line per product; adding the same product again merges quantities.
type CartItem struct {
	BaseSimple
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}
