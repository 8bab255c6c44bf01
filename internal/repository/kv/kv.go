// Package kv provides the scoped key-value stores the cart is persisted in.
package kv

import "context"

// Store is a text key-value store. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
