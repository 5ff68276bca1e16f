package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
)

// Order is immutable once created. The promo code is stored verbatim and
// never applied to the price.
type Order struct {
	ID         string
	CreatedAt  time.Time
	Status     OrderStatus
	TotalPrice float64
	PromoCode  string
}
