package derpi

import (
	"context"
	"strconv"
	"sync"
)

// maxProbeAttempts caps the id-to-slug disambiguation loop. The value is
// part of the compatibility contract with the backing service.
const maxProbeAttempts = 10

const (
	kindUser = "user"
	kindTag  = "tag"
)

type resolutionKey struct {
	kind string
	id   int
}

// resolutionCache remembers, per (kind, id), the slug token that last
// satisfied an id lookup. Entries live for the lifetime of the owning Client
// and are never evicted. Concurrent resolutions of the same key may race to
// store; the first write wins and later ones are skipped, which is harmless
// because converging probes produce the same token.
type resolutionCache struct {
	mu     sync.RWMutex
	tokens map[resolutionKey]string
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{tokens: make(map[resolutionKey]string)}
}

func (rc *resolutionCache) lookup(kind string, id int) (string, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	token, ok := rc.tokens[resolutionKey{kind, id}]
	return token, ok
}

// store records token for (kind, id) unless an entry already exists.
func (rc *resolutionCache) store(kind string, id int, token string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	key := resolutionKey{kind, id}
	if _, ok := rc.tokens[key]; !ok {
		rc.tokens[key] = token
	}
}

// resolveByID bridges an id-keyed lookup to a slug-keyed endpoint. Numeric
// names collide with slugs on the backing service, so the entity reachable
// under a zero-prefixed numeric slug is not always the one with that id; the
// probe leans on the server's own slug canonicalization to find a token that
// yields the requested id, growing the zero prefix on each mismatch.
// Attempts are strictly sequential: each candidate depends on the previous
// mismatch.
func resolveByID[T any](ctx context.Context, cache *resolutionCache, kind string, id int, fetch func(context.Context, string) (T, error), idOf func(T) int) (T, error) {
	candidate, ok := cache.lookup(kind, id)
	if !ok {
		candidate = "0" + strconv.Itoa(id)
	}

	var zero T
	for attempt := 1; attempt <= maxProbeAttempts; attempt++ {
		got, err := fetch(ctx, candidate)
		if err != nil {
			return zero, err
		}
		if idOf(got) == id {
			cache.store(kind, id, candidate)
			return got, nil
		}
		candidate = "0" + candidate
	}
	return zero, &ResolutionExhaustedError{Kind: kind, ID: id, Attempts: maxProbeAttempts}
}
