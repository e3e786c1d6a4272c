package cli

import (
	"context"

	"qkart-cli/internal/client/models"
)

// Login prompts for credentials, authenticates, and reloads the cart
// under the new session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username")
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	password, err := getPassword("Enter password")
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	sess, err := a.auth.Login(ctx, username, password)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	a.session = sess
	printlnFn("Logged in successfully")

	if err := a.cart.Load(ctx, a.session); err != nil {
		printlnFn("Could not load your cart:", userMessage(err))
	}
	return nil
}

// Register prompts for new-account credentials and creates the account.
// The user still logs in explicitly afterwards, as the backend issues no
// token on registration.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username (at least 6 characters)")
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	password, err := getPassword("Enter password (at least 6 characters)")
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	confirm, err := getPassword("Confirm password")
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if err := a.auth.Register(ctx, username, password, confirm); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Registered successfully. Use 'login' to sign in.")
	return nil
}

// Logout clears the persisted session and empties the cart view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(userMessage(err))
		return err
	}
	a.session = models.Session{}
	_ = a.cart.Load(ctx, a.session)
	printlnFn("Logged out")
	return nil
}
