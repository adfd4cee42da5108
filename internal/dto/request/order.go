package request

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items            []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
	ShippingAddress1 string             `json:"shipping_address1" validate:"required"`
	ShippingAddress2 string             `json:"shipping_address2,omitempty"`
	City             string             `json:"city" validate:"required"`
	Zip              string             `json:"zip" validate:"required"`
	Country          string             `json:"country" validate:"required"`
	Phone            string             `json:"phone" validate:"required,min=10,max=15"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}
