// Package session persists the authenticated session (tokens and identity)
// in the client's local database so a login survives restarts.
package session

import "context"

// Names of the values a session carries.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
	KeyUsername     = "username"
)

// Repository is a small named-value store. Get returns common.ErrorNotFound
// for absent names.
type Repository interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name string, value string) error
	Clear(ctx context.Context) error
}
