// Package storage provides the durable key-value snapshot store the
// session persists into. Implementations must tolerate missing keys;
// interpreting snapshot contents is the caller's job.
package storage

import "context"

// KV is the port every snapshot backend implements.
type KV interface {
	// Get returns the value under key. The boolean reports presence;
	// a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key entirely. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	Close() error
}
