package kv

import (
	"context"
	"os"
	"testing"
)

// TestPostgresRoundTrip covers P7: Set followed by Get returns the same
// bytes. It requires a real database and is skipped otherwise, mirroring
// the reference implementation's env-gated integration tests.
func TestPostgresRoundTrip(t *testing.T) {
	url := os.Getenv("JSONDP_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("JSONDP_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := Open(ctx, url, "jsondp_kv_test")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	want := []byte{0x01, 0x02, 0x03}
	if err := store.Set(ctx, 42, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a row for key 42")
	}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	_, ok, err = store.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatalf("expected no row for an unused key")
	}
}
