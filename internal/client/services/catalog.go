// Package services holds the client-side application logic: catalog
// fetch/search with stale-response protection, the cart controller, and
// authentication.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/logging"
)

// ErrStaleResult reports that a catalog response resolved after a newer
// request had already been applied. Callers drop the result silently; the
// newer response is the one on screen.
var ErrStaleResult = errors.New("stale result discarded")

// CatalogService owns the latest catalog snapshot. Every request carries a
// monotonic generation; a response older than the last applied generation
// is discarded, so a slow search can never overwrite a newer one.
type CatalogService struct {
	client api.Client
	log    logging.Logger

	mu         sync.Mutex
	products   []models.Product
	dispatched uint64
	applied    uint64
}

func NewCatalogService(client api.Client, log logging.Logger) *CatalogService {
	return &CatalogService{client: client, log: log}
}

func (s *CatalogService) nextGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched++
	return s.dispatched
}

// FetchAll retrieves the full catalog and replaces the snapshot. On
// failure the previous snapshot is kept so the caller can show a
// persistent "could not load" notice instead of silently blanking the
// catalog.
func (s *CatalogService) FetchAll(ctx context.Context) ([]models.Product, error) {
	gen := s.nextGen()
	products, err := s.client.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		return nil, ErrStaleResult
	}
	s.applied = gen
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	s.products = products
	return products, nil
}

// Search retrieves the catalog filtered by query. An empty query falls
// back to the full catalog. On failure the snapshot degrades to empty
// rather than keeping results inconsistent with the visible query text.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	gen := s.nextGen()
	products, err := s.client.SearchProducts(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		s.log.Debug(ctx, "dropping stale search response", "query", query, "generation", gen)
		return nil, ErrStaleResult
	}
	s.applied = gen
	if err != nil {
		s.products = nil
		return nil, fmt.Errorf("search products: %w", err)
	}
	s.products = products
	return products, nil
}

// Products returns the latest applied snapshot.
func (s *CatalogService) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}
