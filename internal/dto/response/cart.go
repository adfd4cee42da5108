package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type CartItemResponse struct {
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	Subtotal  float64          `json:"subtotal"`
}

type CartResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Items     []*CartItemResponse `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CartToResponse resolves each line against the product map; lines whose
// product no longer exists are reported with a nil product and zero subtotal.
func CartToResponse(cart *entity.Cart, products map[string]*ProductResponse) *CartResponse {
	if cart == nil {
		return nil
	}
	resp := &CartResponse{
		ID:        cart.ID.String(),
		UserID:    cart.UserID.String(),
		Items:     make([]*CartItemResponse, 0, len(cart.Items)),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		line := &CartItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		}
		if p, ok := products[item.ProductID.String()]; ok && p != nil {
			line.Product = p
			line.Subtotal = p.Price * float64(item.Quantity)
			resp.Total += line.Subtotal
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}
