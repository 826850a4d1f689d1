package models

import "time"

// PairInvite is a short-lived invite code a user hands to a partner so the
// partner can link the two accounts.
type PairInvite struct {
	ID        string
	UserID    string
	Code      string
	Expires   time.Time
	CreatedAt time.Time
}
