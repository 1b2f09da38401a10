package dictionary

import (
	"bytes"
	"testing"

	"github.com/dmagro/jsondp/internal/jsonval"
)

func TestInsertAssignsSequentialIDs(t *testing.T) {
	d := New()
	if id := d.Insert([]byte("a")); id != 1 {
		t.Fatalf("first insert id = %d, want 1", id)
	}
	if id := d.Insert([]byte("b")); id != 2 {
		t.Fatalf("second insert id = %d, want 2", id)
	}
	if id := d.Insert([]byte("a")); id != 1 {
		t.Fatalf("re-insert of existing bytes should return its id, got %d", id)
	}
}

func TestLookupBytesAndID(t *testing.T) {
	d := New()
	id := d.Insert([]byte("hello"))
	got, ok := d.LookupBytes([]byte("hello"))
	if !ok || got != id {
		t.Fatalf("LookupBytes = (%d, %v), want (%d, true)", got, ok, id)
	}
	b, ok := d.LookupID(id)
	if !ok || string(b) != "hello" {
		t.Fatalf("LookupID = (%q, %v), want (hello, true)", b, ok)
	}
	if _, ok := d.LookupID(999); ok {
		t.Fatalf("expected lookup of unused id to miss")
	}
}

// TestLearnIsIdempotent covers P5: learning the same value twice leaves
// the dictionary unchanged after the first call.
func TestLearnIsIdempotent(t *testing.T) {
	v, err := jsonval.Parse([]byte(`{"alpha":{"beta":1},"gamma":[{"delta":2}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := New()
	d.Learn(v)
	first := snapshot(d)
	d.Learn(v)
	second := snapshot(d)
	if first != second {
		t.Fatalf("learn was not idempotent:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestLearnOnlyVisitsKeysNotStringValues(t *testing.T) {
	v, err := jsonval.Parse([]byte(`{"alpha":"beta"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := New()
	d.Learn(v)
	if _, ok := d.LookupBytes([]byte("alpha")); !ok {
		t.Fatalf("expected key \"alpha\" to be learned")
	}
	if _, ok := d.LookupBytes([]byte("beta")); ok {
		t.Fatalf("string value \"beta\" should not have been learned")
	}
}

// TestTextRoundTrip covers P6: read_text(write_text(d)) == d.
func TestTextRoundTrip(t *testing.T) {
	d := New()
	d.InsertAs([]byte("alpha"), 1)
	d.InsertAs([]byte("beta"), 5)

	var buf bytes.Buffer
	if err := d.WriteText(&buf); err != nil {
		t.Fatalf("write_text: %v", err)
	}
	got, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("read_text: %v", err)
	}
	if snapshot(d) != snapshot(got) {
		t.Fatalf("round trip mismatch:\nwant: %s\ngot:  %s", snapshot(d), snapshot(got))
	}
}

func TestReadTextSkipsCommentsAndBlankLines(t *testing.T) {
	in := "# a comment\n\n1: alpha\n   \n2: beta\n"
	d, err := ReadText(bytes.NewBufferString(in))
	if err != nil {
		t.Fatalf("read_text: %v", err)
	}
	if b, ok := d.LookupID(1); !ok || string(b) != "alpha" {
		t.Fatalf("id 1 = (%q, %v), want (alpha, true)", b, ok)
	}
	if b, ok := d.LookupID(2); !ok || string(b) != "beta" {
		t.Fatalf("id 2 = (%q, %v), want (beta, true)", b, ok)
	}
}

func TestNoDictionaryNeverMatches(t *testing.T) {
	var nd NoDictionary
	if _, ok := nd.LookupBytes([]byte("anything")); ok {
		t.Fatalf("NoDictionary should never match a lookup")
	}
	if _, ok := nd.LookupID(1); ok {
		t.Fatalf("NoDictionary should never resolve an id")
	}
}

func snapshot(d *Dict) string {
	var buf bytes.Buffer
	_ = d.WriteText(&buf)
	return buf.String()
}
