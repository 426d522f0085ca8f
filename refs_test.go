package derpi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/BytewaveMLP/go-derpi/collection"
)

func TestClient_ImageTags(t *testing.T) {
	t.Parallel()

	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tags/027724.json":
			_, _ = w.Write([]byte(`{"id": 27724, "name": "cute", "slug": "cute"}`))
		case "/tags/050710.json":
			_, _ = w.Write([]byte(`{"id": 50710, "name": "mare", "slug": "mare"}`))
		default:
			http.NotFound(w, r)
		}
	})

	img := &Image{TagIDs: []int{27724, 50710}}
	tags := client.ImageTags(img)

	if tags.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tags.Len())
	}
	if requests != 0 {
		t.Fatalf("requests = %d before consumption, want 0", requests)
	}

	names, err := collection.Map(context.Background(), tags, func(tag *Tag) string { return tag.Name })
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if fmt.Sprint(names) != "[cute mare]" {
		t.Fatalf("names = %v, want [cute mare]", names)
	}
	if requests != 2 {
		t.Fatalf("requests = %d, want 2", requests)
	}

	// Consuming again hits the memo, not the network.
	if _, err := tags.Get(context.Background(), 27724); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if requests != 2 {
		t.Fatalf("requests = %d after memoized Get, want 2", requests)
	}
}

func TestClient_FetchArtistWithoutArtistTag(t *testing.T) {
	t.Parallel()

	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.NotFound(w, r)
	})

	img := &Image{TagString: "cute, mare, solo"}
	tag, err := client.FetchArtist(context.Background(), img)
	if err != nil {
		t.Fatalf("FetchArtist returned error: %v", err)
	}
	if tag != nil {
		t.Fatalf("tag = %+v, want nil without an artist tag", tag)
	}
	if requests != 0 {
		t.Fatalf("requests = %d, want 0", requests)
	}
}

func TestClient_FetchAliasedTag(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tags/040482.json":
			_, _ = w.Write([]byte(`{"id": 40482, "name": "rainbow dash", "slug": "rainbow-dash"}`))
		default:
			http.NotFound(w, r)
		}
	})

	canonical := 40482
	alias := &Tag{ID: 99, Name: "rd", AliasedToID: &canonical}
	tag, err := client.FetchAliasedTag(context.Background(), alias)
	if err != nil {
		t.Fatalf("FetchAliasedTag returned error: %v", err)
	}
	if tag == nil || tag.ID != 40482 {
		t.Fatalf("tag = %+v, want the canonical tag", tag)
	}

	plain := &Tag{ID: 40482, Name: "rainbow dash"}
	tag, err = client.FetchAliasedTag(context.Background(), plain)
	if err != nil {
		t.Fatalf("FetchAliasedTag returned error: %v", err)
	}
	if tag != nil {
		t.Fatalf("tag = %+v, want nil for a non-alias", tag)
	}
}
