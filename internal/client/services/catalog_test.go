package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/models"
	"qkart-cli/internal/logging"
)

func newCatalog(client *fakeClient) *CatalogService {
	return NewCatalogService(client, logging.NewDiscard())
}

func TestCatalog_FetchAllReplacesSnapshot(t *testing.T) {
	client := &fakeClient{products: []models.Product{product("A", 10)}}
	svc := newCatalog(client)

	got, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", svc.Products()[0].ID)
}

func TestCatalog_FetchAllFailureKeepsSnapshot(t *testing.T) {
	client := &fakeClient{products: []models.Product{product("A", 10)}}
	svc := newCatalog(client)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	client.productsErr = api.ErrUnavailable
	_, err = svc.FetchAll(context.Background())

	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Len(t, svc.Products(), 1, "failed reload must not blank the catalog")
}

func TestCatalog_SearchFailureDegradesToEmpty(t *testing.T) {
	client := &fakeClient{products: []models.Product{product("A", 10)}}
	svc := newCatalog(client)
	_, err := svc.FetchAll(context.Background())
	require.NoError(t, err)

	client.searchErr = api.ErrUnavailable
	_, err = svc.Search(context.Background(), "shoe")

	require.ErrorIs(t, err, api.ErrUnavailable)
	assert.Empty(t, svc.Products(),
		"stale results must not stay visible under a failed query")
}

func TestCatalog_SearchPassesQuery(t *testing.T) {
	client := &fakeClient{searchRet: []models.Product{product("B", 5)}}
	svc := newCatalog(client)

	got, err := svc.Search(context.Background(), "bag")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bag", client.lastQuery)
}

func TestCatalog_StaleResponseDiscarded(t *testing.T) {
	slowRelease := make(chan struct{})
	slowStarted := make(chan struct{})

	client := &fakeClient{}
	client.searchFn = func(ctx context.Context, query string) ([]models.Product, error) {
		if query == "old" {
			close(slowStarted)
			<-slowRelease
			return []models.Product{product("OLD", 1)}, nil
		}
		return []models.Product{product("NEW", 2)}, nil
	}
	svc := newCatalog(client)

	var wg sync.WaitGroup
	wg.Add(1)
	var slowErr error
	go func() {
		defer wg.Done()
		_, slowErr = svc.Search(context.Background(), "old")
	}()

	<-slowStarted
	_, err := svc.Search(context.Background(), "new")
	require.NoError(t, err)

	close(slowRelease)
	wg.Wait()

	require.True(t, errors.Is(slowErr, ErrStaleResult),
		"superseded response must be discarded, got %v", slowErr)
	require.Len(t, svc.Products(), 1)
	assert.Equal(t, "NEW", svc.Products()[0].ID)
}
