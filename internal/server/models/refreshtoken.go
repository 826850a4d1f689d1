package models

import "time"

// RefreshToken is one row of the refresh token table. Tokens are single-use:
// a successful refresh deletes the row and issues a replacement.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
