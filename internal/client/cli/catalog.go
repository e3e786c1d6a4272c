package cli

import (
	"context"
	"fmt"
	"strings"

	"qkart-cli/internal/client/models"
)

// Products fetches and prints the full catalog.
func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.FetchAll(ctx)
	if err != nil {
		printlnFn("Could not load products:", userMessage(err))
		return err
	}
	a.catalogStale = false
	printProducts(products)
	return nil
}

// Search runs one server-side catalog search. In the REPL the query
// arrives as a whole line, so no debouncing applies here; the browse view
// is the keystroke-driven path.
func (a *App) Search(ctx context.Context, query string) error {
	products, err := a.catalog.Search(ctx, query)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}
	printProducts(products)
	return nil
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		printlnFn("No products found")
		return
	}
	printlnFn(fmt.Sprintf("%-18s %-10s %-12s %-6s %s", "ID", "COST", "CATEGORY", "RATING", "NAME"))
	for _, p := range products {
		printlnFn(fmt.Sprintf("%-18s $%-9s %-12s %-6s %s",
			p.ID, p.Cost.String(), p.Category, stars(p.Rating), p.Name))
	}
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating)
}
