package models

import "time"

// OrderStatus represents the possible states of a marketplace order.
// Nothing in the API moves an order between them.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// DeliveryWindow is added to the order time to estimate delivery.
const DeliveryWindow = 45 * time.Minute

// OrderItem is a free-form line item; its shape is not checked.
type OrderItem map[string]any

type Order struct {
	ID                string      `json:"id" bson:"id" gorm:"primaryKey"`
	UserID            string      `json:"user_id" bson:"user_id" binding:"required"`
	StoreID           string      `json:"store_id" bson:"store_id" binding:"required"`
	Items             []OrderItem `json:"items" bson:"items" gorm:"serializer:json;type:text" binding:"required"`
	TotalAmount       float64     `json:"total_amount" bson:"total_amount"`
	DeliveryAddress   Location    `json:"delivery_address" bson:"delivery_address" gorm:"serializer:json;type:text" binding:"required"`
	Status            OrderStatus `json:"status" bson:"status" binding:"order_status"`
	OrderTime         time.Time   `json:"order_time" bson:"order_time"`
	EstimatedDelivery time.Time   `json:"estimated_delivery" bson:"estimated_delivery"`
}

func NewOrder() *Order {
	return &Order{Status: OrderPending}
}

// Stamp sets the identifier, the order time and the delivery estimate.
func (o *Order) Stamp(now time.Time) {
	o.ID = idOrNew(o.ID)
	o.OrderTime = now
	o.EstimatedDelivery = now.Add(DeliveryWindow)
	if o.Status == "" {
		o.Status = OrderPending
	}
}

func (o *Order) RecordID() string { return o.ID }
