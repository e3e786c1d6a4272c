package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/logging"
)

// ErrInvalidQuantity rejects a mutation with a quantity outside the
// allowed range before any request is issued.
var ErrInvalidQuantity = errors.New("invalid quantity")

// CatalogProvider supplies the catalog snapshot the cart is reconciled
// against. Satisfied by *CatalogService.
type CatalogProvider interface {
	Products() []models.Product
}

// CartService is the cart controller: it owns the raw cart state and is
// the only writer to it. The enriched view is never cached; it is derived
// from the raw cart and the current catalog on every read, so a catalog
// that loads (or recovers) after the cart does is picked up immediately.
//
// Mutations are not queued; two in-flight mutations may race and the
// backend's full returned cart decides (last response wins). A failed
// mutation leaves local state untouched.
type CartService interface {
	// Load fetches the raw cart and reconciles it. An anonymous session
	// clears the cart without a request. On failure the cart is left
	// empty; no automatic retry.
	Load(ctx context.Context, session models.Session) error

	// AddOrUpdate upserts the quantity for a product. With isNewAdd set
	// (add-to-cart from a listing) an existing line is rejected locally
	// with api.ErrDuplicateItem and no request is issued; the user
	// adjusts the item from the cart view instead. Without it the call
	// always overwrites the server-side quantity.
	AddOrUpdate(ctx context.Context, session models.Session, productID string, quantity int, isNewAdd bool) error

	// Remove deletes a line by sending an explicit quantity-0 upsert.
	Remove(ctx context.Context, session models.Session, productID string) error

	// Lines reconciles the raw cart against the current catalog and
	// returns the resulting enriched view.
	Lines() []models.EnrichedCartLine

	// Raw returns the current raw cart snapshot.
	Raw() []models.CartLine

	// Total returns the sum of enriched line totals.
	Total() decimal.Decimal
}

type cartService struct {
	client  api.Client
	catalog CatalogProvider
	log     logging.Logger

	mu  sync.Mutex
	raw []models.CartLine
}

func NewCartService(client api.Client, catalog CatalogProvider, log logging.Logger) CartService {
	return &cartService{client: client, catalog: catalog, log: log}
}

func (s *cartService) Load(ctx context.Context, session models.Session) error {
	if session.IsAnonymous() {
		s.clear()
		return nil
	}

	raw, err := s.client.FetchCart(ctx, session.Token)
	if err != nil {
		s.clear()
		return fmt.Errorf("load cart: %w", err)
	}
	s.replace(ctx, raw)
	return nil
}

func (s *cartService) AddOrUpdate(ctx context.Context, session models.Session, productID string, quantity int, isNewAdd bool) error {
	if session.IsAnonymous() {
		return api.ErrUnauthorized
	}
	if quantity < 0 || (isNewAdd && quantity < 1) {
		return ErrInvalidQuantity
	}

	if isNewAdd && s.hasLine(productID) {
		// Local rejection; the backend is never consulted for this.
		return api.ErrDuplicateItem
	}

	raw, err := s.client.UpsertCartLine(ctx, session.Token, productID, quantity)
	if err != nil {
		// No optimistic state to roll back: nothing was touched.
		return fmt.Errorf("update cart: %w", err)
	}
	s.replace(ctx, raw)
	return nil
}

func (s *cartService) Remove(ctx context.Context, session models.Session, productID string) error {
	// Always expressed as an explicit quantity-0 upsert so the backend
	// sees the removal; it is never inferred.
	return s.AddOrUpdate(ctx, session, productID, 0, false)
}

func (s *cartService) hasLine(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.raw {
		if line.ProductID == productID && line.Quantity >= 1 {
			return true
		}
	}
	return false
}

// replace installs the backend's authoritative cart.
func (s *cartService) replace(ctx context.Context, raw []models.CartLine) {
	if dangling := len(raw) - len(Reconcile(raw, s.catalog.Products())); dangling > 0 {
		s.log.Warn(ctx, "cart lines not present in catalog", "count", dangling)
	}

	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}

func (s *cartService) clear() {
	s.mu.Lock()
	s.raw = nil
	s.mu.Unlock()
}

func (s *cartService) Lines() []models.EnrichedCartLine {
	return Reconcile(s.Raw(), s.catalog.Products())
}

func (s *cartService) Raw() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.raw...)
}

func (s *cartService) Total() decimal.Decimal {
	return CartTotal(s.Lines())
}
