// Package models defines the catalog and cart types exchanged with the
// QKart backend.
package models

import "github.com/shopspring/decimal"

// Product is a catalog entry as served by the backend. The client never
// mutates it.
type Product struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Rating   int             `json:"rating"`
	ImageURL string          `json:"image"`
}

// CartLine is the backend's raw cart record for one product. The backend
// guarantees at most one line per product id, but not that the id still
// resolves against the current catalog.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// EnrichedCartLine joins a raw cart line with its catalog entry for
// display. It is recomputed on every reconciliation and never persisted.
type EnrichedCartLine struct {
	Product
	Quantity  int
	LineTotal decimal.Decimal
}
