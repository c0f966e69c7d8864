// Package cache stores fetched response bodies keyed by endpoint.
//
// Entries carry the time they were fetched; expiry policy belongs to the
// caller, so a store keeps stale entries around until they are overwritten.
package cache

import (
	"context"
	"time"
)

// Entry is a cached response body and the time it was fetched.
type Entry struct {
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Age returns how old the entry is at now.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// Store defines the operations the fetch layer needs from a cache backend.
// This abstraction allows swapping between the in-process memory store and a
// shared Redis store without changing the fetcher.
type Store interface {
	// Get retrieves an entry by key. Returns ErrMiss if not found.
	Get(ctx context.Context, key string) (Entry, error)

	// Set stores an entry, replacing any previous one.
	Set(ctx context.Context, key string, e Entry) error

	// Delete removes an entry by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Error is a cache sentinel error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrMiss indicates the key was not found in the store.
	ErrMiss Error = "cache miss"
)
