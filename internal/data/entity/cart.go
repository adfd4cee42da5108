package entity

import "github.com/google/uuid"

// Cart is the per-user cart header. The user_id column is unique, so the
// store itself guarantees at most one cart per user.
type Cart struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	Items  []*CartItem
}
