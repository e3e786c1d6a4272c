package services

import (
	"github.com/shopspring/decimal"

	"qkart-cli/internal/client/models"
)

// Reconcile joins the backend's raw cart with the loaded catalog into the
// display-ready cart. Pure: no I/O, no hidden state, identical inputs give
// identical output.
//
// A raw line whose product id is absent from the catalog is dropped from
// the view; the line stays in the raw cart until the next successful
// mutation. Output preserves raw cart order.
func Reconcile(raw []models.CartLine, catalog []models.Product) []models.EnrichedCartLine {
	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	enriched := make([]models.EnrichedCartLine, 0, len(raw))
	for _, line := range raw {
		p, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		enriched = append(enriched, models.EnrichedCartLine{
			Product:   p,
			Quantity:  line.Quantity,
			LineTotal: p.Cost.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return enriched
}

// CartTotal sums the line totals of an enriched cart.
func CartTotal(lines []models.EnrichedCartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}
