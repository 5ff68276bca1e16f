package domain

import "time"

type Ticket struct {
	ID             string
	PurchaseTime   time.Time
	Price          float64
	ExpiresAt      time.Time
	AttractionName string
}
