// Package collection provides a lazy, memoized, single-pass view over a
// fixed list of keys, resolving each key to a value on first access through
// a caller-supplied fetch function.
//
// A Lazy collection never fetches a key more than once: results are cached
// for the collection's lifetime, and concurrent fetches of the same key are
// collapsed into one. Iteration via Next is a single forward pass — the
// cursor does not restart.
//
// Aggregate operations (Find, Map, Reduce, Some, Every, Tap) are free
// functions over the small Collection interface rather than methods, so any
// implementation gets them without re-implementation.
package collection

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FetchFunc resolves a single key to its value.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Collection is the minimal contract the aggregate operations need: a fixed
// length, keyed access, and single-pass iteration. Next reports ok=false
// once the sequence is exhausted.
type Collection[K comparable, V any] interface {
	Len() int
	Get(ctx context.Context, key K) (V, error)
	Next(ctx context.Context) (V, bool, error)
}

// Lazy resolves keys on demand and caches every result. The key list is
// fixed at construction and may contain duplicates; duplicates resolve to
// the cached value but bias Random toward their key.
type Lazy[K comparable, V any] struct {
	fetch FetchFunc[K, V]
	keys  []K

	mu    sync.Mutex
	pos   int
	cache map[K]V
	group singleflight.Group
}

var _ Collection[int, any] = (*Lazy[int, any])(nil)

// New builds a Lazy collection over keys. The slice is copied; later caller
// mutations don't affect the collection.
func New[K comparable, V any](keys []K, fetch FetchFunc[K, V]) *Lazy[K, V] {
	owned := make([]K, len(keys))
	copy(owned, keys)
	return &Lazy[K, V]{
		fetch: fetch,
		keys:  owned,
		cache: make(map[K]V),
	}
}

// Len returns the number of keys, counting duplicates.
func (l *Lazy[K, V]) Len() int { return len(l.keys) }

// Get resolves key, fetching it on first access and answering from cache
// afterwards. Concurrent calls for the same uncached key share one fetch.
// Failed fetches are not cached; a later Get retries.
func (l *Lazy[K, V]) Get(ctx context.Context, key K) (V, error) {
	l.mu.Lock()
	if value, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return value, nil
	}
	l.mu.Unlock()

	value, err, _ := l.group.Do(fmt.Sprint(key), func() (any, error) {
		l.mu.Lock()
		if value, ok := l.cache[key]; ok {
			l.mu.Unlock()
			return value, nil
		}
		l.mu.Unlock()

		fetched, err := l.fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[key] = fetched
		l.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return value.(V), nil
}

// First resolves the value at position 0. ok is false for an empty
// collection.
func (l *Lazy[K, V]) First(ctx context.Context) (V, bool, error) {
	if len(l.keys) == 0 {
		var zero V
		return zero, false, nil
	}
	return l.resolve(ctx, l.keys[0])
}

// Last resolves the value at the final position. ok is false for an empty
// collection.
func (l *Lazy[K, V]) Last(ctx context.Context) (V, bool, error) {
	if len(l.keys) == 0 {
		var zero V
		return zero, false, nil
	}
	return l.resolve(ctx, l.keys[len(l.keys)-1])
}

// Random resolves a uniformly random position. Duplicate keys make their
// value proportionally more likely. ok is false for an empty collection.
func (l *Lazy[K, V]) Random(ctx context.Context) (V, bool, error) {
	if len(l.keys) == 0 {
		var zero V
		return zero, false, nil
	}
	return l.resolve(ctx, l.keys[rand.IntN(len(l.keys))])
}

// Next resolves the value under the cursor and advances it. ok is false
// once the sequence is exhausted; the cursor never restarts.
func (l *Lazy[K, V]) Next(ctx context.Context) (V, bool, error) {
	l.mu.Lock()
	if l.pos >= len(l.keys) {
		l.mu.Unlock()
		var zero V
		return zero, false, nil
	}
	key := l.keys[l.pos]
	l.pos++
	l.mu.Unlock()
	return l.resolve(ctx, key)
}

func (l *Lazy[K, V]) resolve(ctx context.Context, key K) (V, bool, error) {
	value, err := l.Get(ctx, key)
	if err != nil {
		var zero V
		return zero, false, err
	}
	return value, true, nil
}
