package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"qkart-cli/internal/client/api"
	"qkart-cli/internal/client/services"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "backend rejection surfaces verbatim",
			err:  &api.ValidationError{Message: "Password is incorrect"},
			want: "Password is incorrect",
		},
		{
			name: "duplicate add",
			err:  api.ErrDuplicateItem,
			want: "Item already in cart. Use the cart view to update quantity or remove item.",
		},
		{
			name: "wrapped duplicate add",
			err:  fmt.Errorf("add PRD1: %w", api.ErrDuplicateItem),
			want: "Item already in cart. Use the cart view to update quantity or remove item.",
		},
		{
			name: "session expired",
			err:  api.ErrUnauthorized,
			want: "You are not logged in or your session expired. Please login again.",
		},
		{
			name: "unknown product keeps backend wording",
			err:  fmt.Errorf("Product doesn't exist: %w", api.ErrNotFound),
			want: "Product doesn't exist: product not found",
		},
		{
			name: "backend unreachable",
			err:  api.ErrUnavailable,
			want: "Something went wrong. Check that the backend is running, reachable and returns valid JSON.",
		},
		{
			name: "invalid quantity",
			err:  services.ErrInvalidQuantity,
			want: "Quantity must be a non-negative number (at least 1 for a new item).",
		},
		{
			name: "unexpected error passes through",
			err:  errors.New("disk on fire"),
			want: "disk on fire",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, userMessage(tc.err))
		})
	}
}
