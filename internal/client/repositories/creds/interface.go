// Package creds provides durable storage for the client's credential
// entries: the bearer token and the serialized user profile.
package creds

import "context"

// Repository is a small key-value store. Get returns (nil, nil) for a
// missing key so callers can distinguish "absent" from a storage failure.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
