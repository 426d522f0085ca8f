package collection

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingFetch resolves ints to their decimal strings, tracking how many
// fetches actually ran.
func countingFetch(calls *atomic.Int64) FetchFunc[int, string] {
	return func(ctx context.Context, key int) (string, error) {
		calls.Add(1)
		return strconv.Itoa(key), nil
	}
}

func TestLazy_GetMemoizes(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{1, 2, 3}, countingFetch(&calls))

	for range 3 {
		got, err := c.Get(context.Background(), 2)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if got != "2" {
			t.Fatalf("Get(2) = %q, want 2", got)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("fetches = %d, want 1", calls.Load())
	}
}

func TestLazy_GetRetriesAfterFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	c := New([]int{1}, func(ctx context.Context, key int) (string, error) {
		attempts++
		if attempts == 1 {
			return "", errors.New("transient")
		}
		return strconv.Itoa(key), nil
	})

	if _, err := c.Get(context.Background(), 1); err == nil {
		t.Fatal("first Get succeeded, want error")
	}
	got, err := c.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}
	if got != "1" {
		t.Fatalf("Get(1) = %q, want 1", got)
	}
}

func TestLazy_ConcurrentGetsShareOneFetch(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{7}, func(ctx context.Context, key int) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return strconv.Itoa(key), nil
	})

	const workers = 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Get(context.Background(), 7)
			if err != nil {
				t.Errorf("Get returned error: %v", err)
				return
			}
			if got != "7" {
				t.Errorf("Get(7) = %q, want 7", got)
			}
		}()
	}
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("fetches = %d, want concurrent gets collapsed to 1", calls.Load())
	}
}

func TestLazy_Empty(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New(nil, countingFetch(&calls))
	ctx := context.Background()

	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	for name, op := range map[string]func(context.Context) (string, bool, error){
		"First":  c.First,
		"Last":   c.Last,
		"Random": c.Random,
		"Next":   c.Next,
	} {
		if _, ok, err := op(ctx); err != nil || ok {
			t.Fatalf("%s on empty = ok=%v err=%v, want ok=false err=nil", name, ok, err)
		}
	}

	if all, err := Every(ctx, c, func(string) bool { return true }); err != nil || all {
		t.Fatalf("Every on empty = %v, %v; want false, nil", all, err)
	}
	if any, err := Some(ctx, c, func(string) bool { return true }); err != nil || any {
		t.Fatalf("Some on empty = %v, %v; want false, nil", any, err)
	}
	if calls.Load() != 0 {
		t.Fatalf("fetches = %d, want 0", calls.Load())
	}
}

func TestLazy_NextIsSinglePass(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{1, 2}, countingFetch(&calls))
	ctx := context.Background()

	var seen []string
	for {
		value, ok, err := c.Next(ctx)
		if err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
		if !ok {
			break
		}
		seen = append(seen, value)
	}
	if len(seen) != 2 || seen[0] != "1" || seen[1] != "2" {
		t.Fatalf("seen = %v, want [1 2]", seen)
	}

	// The cursor stays exhausted.
	if _, ok, _ := c.Next(ctx); ok {
		t.Fatal("Next after exhaustion reported ok=true")
	}
}

func TestLazy_DuplicateKeys(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{5, 5, 6}, countingFetch(&calls))

	values, err := Map(context.Background(), c, func(v string) string { return v })
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("values = %v, want 3 entries with the duplicate repeated", values)
	}
	if calls.Load() != 2 {
		t.Fatalf("fetches = %d, want duplicates to share one fetch", calls.Load())
	}
}

func TestLazy_CopiesKeys(t *testing.T) {
	t.Parallel()

	keys := []int{1, 2}
	var calls atomic.Int64
	c := New(keys, countingFetch(&calls))
	keys[0] = 99

	got, ok, err := c.First(context.Background())
	if err != nil || !ok {
		t.Fatalf("First = ok=%v err=%v", ok, err)
	}
	if got != "1" {
		t.Fatalf("First = %q, want caller mutation ignored", got)
	}
}

func TestFind_ShortCircuits(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{1, 2, 3, 4, 5}, countingFetch(&calls))

	got, ok, err := Find(context.Background(), c, func(v string) bool { return v == "2" })
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if !ok || got != "2" {
		t.Fatalf("Find = %q ok=%v, want 2 true", got, ok)
	}
	if calls.Load() != 2 {
		t.Fatalf("fetches = %d, want Find to stop at the match", calls.Load())
	}
}

func TestFind_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	c := New([]int{1}, func(ctx context.Context, key int) (string, error) {
		return "", sentinel
	})

	_, _, err := Find(context.Background(), c, func(string) bool { return true })
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want the fetch error", err)
	}
}

func TestReduce(t *testing.T) {
	t.Parallel()

	c := New([]int{1, 2, 3}, func(ctx context.Context, key int) (int, error) {
		return key * 10, nil
	})

	sum, err := Reduce(context.Background(), c, func(acc, v int) int { return acc + v }, 0)
	if err != nil {
		t.Fatalf("Reduce returned error: %v", err)
	}
	if sum != 60 {
		t.Fatalf("sum = %d, want 60", sum)
	}
}

func TestEvery(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{2, 4, 5, 6}, countingFetch(&calls))

	even := func(v string) bool { return v != "5" }
	all, err := Every(context.Background(), c, even)
	if err != nil {
		t.Fatalf("Every returned error: %v", err)
	}
	if all {
		t.Fatal("Every = true, want false on mismatch")
	}
	if calls.Load() != 3 {
		t.Fatalf("fetches = %d, want Every to stop at the mismatch", calls.Load())
	}
}

func TestTap(t *testing.T) {
	t.Parallel()

	c := New([]int{1, 2}, func(ctx context.Context, key int) (string, error) {
		return strconv.Itoa(key), nil
	})

	var seen []string
	if err := Tap(context.Background(), c, func(v string) { seen = append(seen, v) }); err != nil {
		t.Fatalf("Tap returned error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "1" || seen[1] != "2" {
		t.Fatalf("seen = %v, want [1 2]", seen)
	}
}

func TestLazy_FirstLastRandom(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	c := New([]int{10, 20, 30}, countingFetch(&calls))
	ctx := context.Background()

	first, ok, err := c.First(ctx)
	if err != nil || !ok || first != "10" {
		t.Fatalf("First = %q ok=%v err=%v, want 10", first, ok, err)
	}
	last, ok, err := c.Last(ctx)
	if err != nil || !ok || last != "30" {
		t.Fatalf("Last = %q ok=%v err=%v, want 30", last, ok, err)
	}
	random, ok, err := c.Random(ctx)
	if err != nil || !ok {
		t.Fatalf("Random = ok=%v err=%v", ok, err)
	}
	if random != "10" && random != "20" && random != "30" {
		t.Fatalf("Random = %q, want a collection member", random)
	}
}
