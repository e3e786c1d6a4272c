package cli

import (
	"errors"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/services"
)

// userMessage converts an error from the services layer into the single
// notification the user sees for a failed operation.
func userMessage(err error) string {
	var vErr *api.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, api.ErrDuplicateItem):
		return "Item already in cart. Use the cart view to update quantity or remove item."
	case errors.Is(err, api.ErrUnauthorized):
		return "You are not logged in or your session expired. Please login again."
	case errors.Is(err, api.ErrNotFound):
		return err.Error()
	case errors.Is(err, api.ErrUnavailable):
		return "Something went wrong. Check that the backend is running, reachable and returns valid JSON."
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Quantity must be a non-negative number (at least 1 for a new item)."
	default:
		return err.Error()
	}
}
