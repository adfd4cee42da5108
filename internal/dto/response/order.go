package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type OrderItemResponse struct {
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice float64          `json:"unit_price"`
	Subtotal  float64          `json:"subtotal"`
}

type OrderUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderResponse struct {
	ID               string               `json:"id"`
	User             *OrderUserResponse   `json:"user,omitempty"`
	UserID           string               `json:"user_id"`
	Items            []*OrderItemResponse `json:"order_items"`
	ShippingAddress1 string               `json:"shipping_address1"`
	ShippingAddress2 string               `json:"shipping_address2,omitempty"`
	City             string               `json:"city"`
	Zip              string               `json:"zip"`
	Country          string               `json:"country"`
	Phone            string               `json:"phone"`
	TotalPrice       float64              `json:"total_price"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type TotalSalesResponse struct {
	TotalSales float64 `json:"total_sales"`
}

// OrderToResponse expands items against the product map. Unit prices come
// from the order lines themselves, never from the current product price.
func OrderToResponse(order *entity.Order, user *entity.User, products map[string]*ProductResponse) *OrderResponse {
	if order == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:               order.ID.String(),
		UserID:           order.UserID.String(),
		Items:            make([]*OrderItemResponse, 0, len(order.Items)),
		ShippingAddress1: order.ShippingAddress1,
		ShippingAddress2: order.ShippingAddress2,
		City:             order.City,
		Zip:              order.Zip,
		Country:          order.Country,
		Phone:            order.Phone,
		TotalPrice:       order.TotalPrice,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if user != nil {
		resp.User = &OrderUserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		}
	}
	for _, item := range order.Items {
		line := &OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice * float64(item.Quantity),
		}
		if p, ok := products[item.ProductID.String()]; ok {
			line.Product = p
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

func OrdersToResponse(orders []*entity.Order) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToResponse(o, nil, nil))
	}
	return result
}
