package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/jsonval"
)

func mustParse(t *testing.T, doc string) jsonval.Value {
	t.Helper()
	v, err := jsonval.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse %q: %v", doc, err)
	}
	return v
}

// TestScenarios reproduces spec §8's literal end-to-end scenarios other than
// scenario 8 (see TestObjectWithFieldDictionary). Each wire form is checked
// byte-for-byte, except the address, whose tag and length are checked.
func TestScenarios(t *testing.T) {
	nd := dictionary.NoDictionary{}

	cases := []struct {
		name     string
		json     string
		wantWire []byte
		wantJSON string
	}{
		{"true", `true`, []byte{0x01}, `true`},
		{"null", `null`, []byte{0x1F}, `null`},
		{"zero", `0`, []byte{0x12}, `0`},
		{"negative", `-300`, []byte{0x06, 0xD4, 0xFE}, `-300`},
		{"short-hex", `"0x01"`, []byte{0x04, 0x01}, `"0x01"`},
		{"b16-hex", `"0x100"`, []byte{0x0C, 0x00, 0x01}, `"0x0100"`},
		{
			"address",
			`"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"`,
			nil, // length-checked separately below
			`"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"`,
		},
		{
			"bignumber",
			`{"type":"BigNumber","hex":"0x1ff"}`,
			[]byte{0x13, 0x02, 0x01, 0xFF},
			`"0x01ff"`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := mustParse(t, c.json)
			wire, err := Encode(v, nd, nd)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if c.name == "address" {
				if len(wire) != 21 || wire[0] != 0x0F {
					t.Fatalf("address wire = % X, want tag 0F + 20 bytes", wire)
				}
			} else if c.wantWire != nil && !bytes.Equal(wire, c.wantWire) {
				t.Fatalf("wire = % X, want % X", wire, c.wantWire)
			}

			decoded, err := Decode(wire, nd, nd)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			got := jsonval.Stringify(decoded)
			if got != c.wantJSON {
				t.Fatalf("decoded = %s, want %s", got, c.wantJSON)
			}
		})
	}
}

// TestObjectWithFieldDictionary reproduces scenario 8: {"alpha":10} under a
// field dictionary containing alpha->1.
func TestObjectWithFieldDictionary(t *testing.T) {
	fd := dictionary.New()
	fd.InsertAs([]byte("alpha"), 1)
	nd := dictionary.NoDictionary{}

	v := mustParse(t, `{"alpha":10}`)
	wire, err := Encode(v, fd, nd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{codeDO, 0x01, codeU8 | (1 << fieldWidthShift), 0x01, 0x0A}
	if !bytes.Equal(wire, want) {
		t.Fatalf("wire = % X, want % X", wire, want)
	}

	decoded, err := Decode(wire, fd, nd)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := jsonval.Stringify(decoded); got != `{"alpha":10}` {
		t.Fatalf("decoded = %s, want {\"alpha\":10}", got)
	}
}

// TestRoundTripVariety exercises P1/P2: a grab-bag of values round-trips,
// with the documented normalizations (narrowest integer tag, hex padding).
func TestRoundTripVariety(t *testing.T) {
	nd := dictionary.NoDictionary{}
	docs := []string{
		`{"a":1,"b":[1,2,3],"c":"hello","d":null,"e":true,"f":false}`,
		`[1,-1,65536,-70000,4294967296,-5000000000,3.5]`,
		`"0x0102030405060708090a0b0c0d0e0f10"`,
		`"plain string"`,
		`{}`,
		`[]`,
	}
	for _, doc := range docs {
		v := mustParse(t, doc)
		wire, err := Encode(v, nd, nd)
		if err != nil {
			t.Fatalf("encode %s: %v", doc, err)
		}
		decoded, err := Decode(wire, nd, nd)
		if err != nil {
			t.Fatalf("decode %s: %v", doc, err)
		}
		wire2, err := Encode(decoded, nd, nd)
		if err != nil {
			t.Fatalf("re-encode %s: %v", doc, err)
		}
		if !bytes.Equal(wire, wire2) {
			t.Fatalf("%s: re-encoding the decoded value changed the wire form: % X vs % X", doc, wire, wire2)
		}
	}
}

// TestValueDictionarySubstitution covers P3: encoding under an empty value
// dictionary vs. one containing a matching string must decode identically.
func TestValueDictionarySubstitution(t *testing.T) {
	fd := dictionary.NoDictionary{}
	empty := dictionary.New()
	loaded := dictionary.New()
	loaded.InsertAs([]byte("hello"), 7)

	v := mustParse(t, `"hello"`)

	wireEmpty, err := Encode(v, fd, empty)
	if err != nil {
		t.Fatalf("encode empty: %v", err)
	}
	wireLoaded, err := Encode(v, fd, loaded)
	if err != nil {
		t.Fatalf("encode loaded: %v", err)
	}
	if bytes.Equal(wireEmpty, wireLoaded) {
		t.Fatalf("expected dictionary substitution to change the wire form")
	}
	if wireLoaded[0]&valueDictFlag == 0 {
		t.Fatalf("expected value-dict flag set on substituted string")
	}

	decEmpty, err := Decode(wireEmpty, fd, empty)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	decLoaded, err := Decode(wireLoaded, fd, loaded)
	if err != nil {
		t.Fatalf("decode loaded: %v", err)
	}
	if jsonval.Stringify(decEmpty) != jsonval.Stringify(decLoaded) {
		t.Fatalf("dictionary substitution was not transparent to the decoded value")
	}
}

// TestDictionaryMissOnDecodeIsError covers §7: a decode-side field-dictionary
// miss is an error, unlike an encode-side miss which falls back inline.
func TestDictionaryMissOnDecodeIsError(t *testing.T) {
	fd := dictionary.New()
	fd.InsertAs([]byte("alpha"), 1)
	nd := dictionary.NoDictionary{}

	v := mustParse(t, `{"alpha":10}`)
	wire, err := Encode(v, fd, nd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	emptyFD := dictionary.New()
	if _, err := Decode(wire, emptyFD, nd); err == nil {
		t.Fatalf("expected decode error for missing field-dictionary id")
	}
}

func TestLongFormArray(t *testing.T) {
	nd := dictionary.NoDictionary{}
	items := make([]jsonval.Value, 300)
	for i := range items {
		items[i] = jsonval.Int64(int64(i))
	}
	v := jsonval.Array(items)

	wire, err := Encode(v, nd, nd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if wire[0] != codeDWA {
		t.Fatalf("expected DWA tag for a 300-element array, got %d", wire[0])
	}
	decoded, err := Decode(wire, nd, nd)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Array()) != 300 {
		t.Fatalf("decoded array length = %d, want 300", len(decoded.Array()))
	}
}

// TestLongFormByteBlob covers code 23 (DWB): a hex-string whose decoded
// payload exceeds 255 bytes must round-trip through the long-form byte-blob
// tag, with the length field carrying the original hex *character* count
// (spec §4.3's DWB char-length contract), not the decoded byte count.
func TestLongFormByteBlob(t *testing.T) {
	nd := dictionary.NoDictionary{}

	cases := []struct {
		name   string
		digits int // hex digits after "0x"
	}{
		{"even-length", 600}, // 300 bytes
		{"odd-length", 601},  // left-padded to 301 bytes on decode
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := `"0x` + strings.Repeat("ab", (c.digits+1)/2)[:c.digits] + `"`
			v := mustParse(t, doc)

			wire, err := Encode(v, nd, nd)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if wire[0] != codeDWB {
				t.Fatalf("expected DWB tag, got %d", wire[0])
			}
			gotLen := uint16(wire[1]) | uint16(wire[2])<<8
			if int(gotLen) != c.digits {
				t.Fatalf("DWB length field = %d, want %d (hex digit count, not byte count)", gotLen, c.digits)
			}

			decoded, err := Decode(wire, nd, nd)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			want := `"0x` + strings.Repeat("ab", (c.digits+1)/2)[:c.digits] + `"`
			if got := jsonval.Stringify(decoded); got != want {
				t.Fatalf("decoded = %s, want %s", got, want)
			}

			wire2, err := Encode(decoded, nd, nd)
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if !bytes.Equal(wire, wire2) {
				t.Fatalf("re-encoding the decoded value changed the wire form: % X vs % X", wire, wire2)
			}
		})
	}
}
