package api

import "errors"

// Sentinel errors for backend failures. Callers match them with errors.Is.
var (
	// ErrUnavailable covers transport failures, non-JSON responses and
	// unexpected status codes.
	ErrUnavailable = errors.New("backend unreachable")

	// ErrUnauthorized is returned for cart operations with a missing or
	// expired token; the UI prompts for re-authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a mutation names a product the backend
	// does not know.
	ErrNotFound = errors.New("product not found")

	// ErrDuplicateItem is a local-only rejection of an add-to-cart for a
	// product that already has a cart line. It is never sent to the backend.
	ErrDuplicateItem = errors.New("item already in cart")
)

// ValidationError carries a backend-reported rejection whose message is
// safe to show to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
