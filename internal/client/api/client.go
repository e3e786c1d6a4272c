// Package api implements the HTTP client for the QKart backend: catalog
// reads, cart reads and upserts, and the auth endpoints. Transport and
// status failures are mapped to the sentinel errors in errors.go at this
// boundary; nothing above it sees a raw HTTP error.
package api

import (
	"context"

	"qkart-cli/internal/client/models"
)

// Client is the backend surface consumed by the services layer.
type Client interface {
	// FetchProducts retrieves the full catalog.
	FetchProducts(ctx context.Context) ([]models.Product, error)

	// SearchProducts retrieves the catalog filtered server-side by query.
	// An empty or whitespace-only query is equivalent to FetchProducts.
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)

	// FetchCart retrieves the raw cart for the bearer token.
	FetchCart(ctx context.Context, token string) ([]models.CartLine, error)

	// UpsertCartLine sets the quantity for a product in the cart and
	// returns the backend's full authoritative cart. Quantity 0 removes
	// the line.
	UpsertCartLine(ctx context.Context, token, productID string, quantity int) ([]models.CartLine, error)

	// Login authenticates and returns the resulting session.
	Login(ctx context.Context, username, password string) (*models.Session, error)

	// Register creates a new account.
	Register(ctx context.Context, username, password string) error
}
