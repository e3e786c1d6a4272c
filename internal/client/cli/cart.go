package cli

import (
	"context"
	"fmt"
)

// ShowCart prints the enriched cart with line totals, the cart total and
// the wallet balance.
func (a *App) ShowCart(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Login to view your cart")
		return nil
	}

	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	printlnFn(fmt.Sprintf("%-18s %-4s %-10s %-10s %s", "ID", "QTY", "COST", "TOTAL", "NAME"))
	for _, line := range lines {
		printlnFn(fmt.Sprintf("%-18s %-4d $%-9s $%-9s %s",
			line.ID, line.Quantity, line.Cost.String(), line.LineTotal.String(), line.Name))
	}
	printlnFn(fmt.Sprintf("Order total: $%s  |  Wallet balance: $%s",
		a.cart.Total().String(), a.session.Balance.String()))
	return nil
}

// Add puts a product in the cart as a new item. An existing line is
// rejected locally; the user updates it from the cart instead.
func (a *App) Add(ctx context.Context, productID string, quantity int) error {
	if err := a.refreshCatalog(ctx); err != nil {
		printlnFn("Could not load products:", userMessage(err))
		return err
	}
	if err := a.cart.AddOrUpdate(ctx, a.session, productID, quantity, true); err != nil {
		printlnFn(userMessage(err))
		return err
	}
	printlnFn("Added to cart")
	return a.ShowCart(ctx)
}

// Update overwrites the quantity of an existing cart line.
func (a *App) Update(ctx context.Context, productID string, quantity int) error {
	if err := a.cart.AddOrUpdate(ctx, a.session, productID, quantity, false); err != nil {
		printlnFn(userMessage(err))
		return err
	}
	return a.ShowCart(ctx)
}

// Remove deletes a cart line.
func (a *App) Remove(ctx context.Context, productID string) error {
	if err := a.cart.Remove(ctx, a.session, productID); err != nil {
		printlnFn(userMessage(err))
		return err
	}
	printlnFn("Removed from cart")
	return a.ShowCart(ctx)
}
