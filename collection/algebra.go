package collection

import "context"

// Find consumes c until pred matches and returns the matching value. ok is
// false when the sequence ends without a match. The cursor is left where
// the match was found.
func Find[K comparable, V any](ctx context.Context, c Collection[K, V], pred func(V) bool) (V, bool, error) {
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			var zero V
			return zero, false, err
		}
		if !ok {
			var zero V
			return zero, false, nil
		}
		if pred(value) {
			return value, true, nil
		}
	}
}

// Map consumes c and returns fn applied to every value, in sequence order.
func Map[K comparable, V, T any](ctx context.Context, c Collection[K, V], fn func(V) T) ([]T, error) {
	out := make([]T, 0, c.Len())
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, fn(value))
	}
}

// Reduce consumes c, folding every value into an accumulator seeded with
// seed.
func Reduce[K comparable, V, T any](ctx context.Context, c Collection[K, V], fn func(T, V) T, seed T) (T, error) {
	acc := seed
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc = fn(acc, value)
	}
}

// Some reports whether pred matches any value, short-circuiting on the
// first match. An empty collection reports false.
func Some[K comparable, V any](ctx context.Context, c Collection[K, V], pred func(V) bool) (bool, error) {
	_, ok, err := Find(ctx, c, pred)
	return ok, err
}

// Every reports whether pred matches all values. An empty collection
// reports false, not the vacuous true — callers rely on this to distinguish
// "all tags matched" from "no tags at all".
func Every[K comparable, V any](ctx context.Context, c Collection[K, V], pred func(V) bool) (bool, error) {
	if c.Len() == 0 {
		return false, nil
	}
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !pred(value) {
			return false, nil
		}
	}
}

// Tap consumes c, passing every value to fn for its side effects.
func Tap[K comparable, V any](ctx context.Context, c Collection[K, V], fn func(V)) error {
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fn(value)
	}
}
