package models

import "github.com/shopspring/decimal"

// Session holds the credentials returned by a successful login. It is
// read-only input to the cart and catalog operations; an empty token means
// the user is anonymous.
type Session struct {
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

// IsAnonymous reports whether the session carries no credentials.
func (s Session) IsAnonymous() bool {
	return s.Token == ""
}
