package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qkart-cli/internal/client/models"
)

func product(id string, cost int64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: "Fashion",
		Cost:     decimal.NewFromInt(cost),
		Rating:   4,
	}
}

func TestReconcile_Projection(t *testing.T) {
	raw := []models.CartLine{{ProductID: "A", Quantity: 2}}
	catalog := []models.Product{product("A", 10)}

	enriched := Reconcile(raw, catalog)

	require.Len(t, enriched, 1)
	assert.Equal(t, "A", enriched[0].ID)
	assert.Equal(t, 2, enriched[0].Quantity)
	assert.True(t, enriched[0].LineTotal.Equal(decimal.NewFromInt(20)),
		"line total should be cost x quantity, got %s", enriched[0].LineTotal)
}

func TestReconcile_DanglingReferenceDropped(t *testing.T) {
	raw := []models.CartLine{{ProductID: "X", Quantity: 1}}

	enriched := Reconcile(raw, nil)

	assert.Empty(t, enriched)
}

func TestReconcile_PreservesRawOrder(t *testing.T) {
	raw := []models.CartLine{
		{ProductID: "C", Quantity: 1},
		{ProductID: "A", Quantity: 1},
		{ProductID: "B", Quantity: 1},
	}
	catalog := []models.Product{product("A", 1), product("B", 2), product("C", 3)}

	enriched := Reconcile(raw, catalog)

	require.Len(t, enriched, 3)
	assert.Equal(t, "C", enriched[0].ID)
	assert.Equal(t, "A", enriched[1].ID)
	assert.Equal(t, "B", enriched[2].ID)
}

func TestReconcile_Idempotent(t *testing.T) {
	raw := []models.CartLine{
		{ProductID: "A", Quantity: 2},
		{ProductID: "B", Quantity: 5},
	}
	catalog := []models.Product{product("A", 10), product("B", 3)}

	first := Reconcile(raw, catalog)
	second := Reconcile(raw, catalog)

	assert.Equal(t, first, second)
}

func TestCartTotal(t *testing.T) {
	raw := []models.CartLine{
		{ProductID: "A", Quantity: 2},
		{ProductID: "B", Quantity: 1},
	}
	catalog := []models.Product{product("A", 10), product("B", 5)}

	total := CartTotal(Reconcile(raw, catalog))

	assert.True(t, total.Equal(decimal.NewFromInt(25)), "got %s", total)
}

func TestCartTotal_Empty(t *testing.T) {
	assert.True(t, CartTotal(nil).IsZero())
}
