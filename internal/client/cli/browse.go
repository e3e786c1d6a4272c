package cli

import (
	"context"

	"qkart-cli/internal/client/tui"
)

// Browse opens the full-screen storefront view: search-as-you-type with
// debounced dispatch, and add-to-cart on the highlighted product.
func (a *App) Browse(ctx context.Context) error {
	err := tui.Run(ctx, tui.Deps{
		Catalog: a.catalog,
		Cart:    a.cart,
		Session: a.session,
		Window:  a.config.DebounceWindow,
		Log:     a.log,
	})
	if err != nil {
		printlnFn("browse error:", err.Error())
		return err
	}
	return nil
}
