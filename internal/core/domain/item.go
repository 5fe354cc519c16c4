package domain

import "time"

// Item is a catalog entry students can spend coins on. PurchaseCount is
// informational only and never consulted by balance logic.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	Description   string    `json:"description"`
	Available     bool      `json:"available"`
	PurchaseCount int       `json:"purchaseCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
