// Package backups implements the local durable store used by the autosave
// controller as a crash/interruption fallback for unsaved drafts.
package backups

import "context"

// Repository is a string key/value store with durable local persistence.
// Get returns common.ErrorNotFound when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
