package ethrpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseHexUint64(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0x1444f3b", 21253947},
		{"15", 15},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := ParseHexUint64(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestBatchMatchesResponsesByID covers P8: responses out of request order
// still resolve to the correct id.
func TestBatchMatchesResponsesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"latest","result":"0x10"},{"id":"net","result":"1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	resp, err := c.Batch(context.Background(), []Request{NetVersion(), LatestBlock()})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}

	latest, err := resp.Result("latest")
	if err != nil {
		t.Fatalf("result latest: %v", err)
	}
	if string(latest) != `"0x10"` {
		t.Fatalf("latest = %s, want \"0x10\"", latest)
	}

	if _, err := resp.Result("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for a missing id, got %v", err)
	}
}

func TestConnectParsesHexAndDecimal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"net","result":"1"},{"id":"latest","result":"0x1234"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	chainID, height, err := c.Connect(context.Background())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if chainID != 1 {
		t.Fatalf("chainID = %d, want 1", chainID)
	}
	if height != 0x1234 {
		t.Fatalf("height = %d, want %d", height, 0x1234)
	}
}

func TestBatchErrorEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"b0x1","error":{"code":-32000,"message":"not found"}}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	resp, err := c.Batch(context.Background(), []Request{GetBlockByNumber("0x1", false)})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if _, err := resp.Result("b0x1"); err == nil {
		t.Fatalf("expected an RPC error for id b0x1")
	}
}
