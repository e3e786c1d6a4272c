package services

import (
	"context"

	"qkart-cli/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Results and recorded
// arguments are exposed as plain fields; searchFn optionally overrides
// SearchProducts for tests that need to control interleaving.
type fakeClient struct {
	products     []models.Product
	productsErr  error
	fetchCalls   int

	searchRet   []models.Product
	searchErr   error
	searchCalls int
	lastQuery   string
	searchFn    func(ctx context.Context, query string) ([]models.Product, error)

	cart           []models.CartLine
	cartErr        error
	fetchCartCalls int
	lastCartToken  string

	upsertRet   []models.CartLine
	upsertErr   error
	upsertCalls int
	lastUpsert  models.CartLine

	loginSess     *models.Session
	loginErr      error
	lastLoginUser string
	lastLoginPass string

	registerErr      error
	registerCalls    int
	lastRegisterUser string
}

func (f *fakeClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	f.fetchCalls++
	return f.products, f.productsErr
}

func (f *fakeClient) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	f.searchCalls++
	f.lastQuery = query
	if f.searchFn != nil {
		return f.searchFn(ctx, query)
	}
	return f.searchRet, f.searchErr
}

func (f *fakeClient) FetchCart(ctx context.Context, token string) ([]models.CartLine, error) {
	f.fetchCartCalls++
	f.lastCartToken = token
	return f.cart, f.cartErr
}

func (f *fakeClient) UpsertCartLine(ctx context.Context, token, productID string, quantity int) ([]models.CartLine, error) {
	f.upsertCalls++
	f.lastCartToken = token
	f.lastUpsert = models.CartLine{ProductID: productID, Quantity: quantity}
	return f.upsertRet, f.upsertErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	f.lastLoginUser = username
	f.lastLoginPass = password
	return f.loginSess, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	f.registerCalls++
	f.lastRegisterUser = username
	return f.registerErr
}
