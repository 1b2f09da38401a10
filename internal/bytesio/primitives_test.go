package bytesio

import (
	"bytes"
	"testing"
)

func TestIntegerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteU32LE(&buf, 0xDEADBEEF); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadU32LE(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0xDEADBEEF {
		t.Fatalf("got %#x, want %#x", got, 0xDEADBEEF)
	}
}

func TestSignedLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteI16LE(&buf, -300); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.Bytes(); !bytes.Equal(got, []byte{0xD4, 0xFE}) {
		t.Fatalf("bytes = % X, want D4 FE", got)
	}
}

func TestShortReadIsError(t *testing.T) {
	buf := bytes.NewReader([]byte{0x01})
	if _, err := ReadU32LE(buf); err == nil {
		t.Fatalf("expected a short-read error")
	}
}

func TestReverse(t *testing.T) {
	got := Reverse([]byte{0x01, 0x02, 0x03})
	want := []byte{0x03, 0x02, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("Reverse = % X, want % X", got, want)
	}
}

func TestF64RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteF64LE(&buf, 3.5); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadF64LE(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 3.5 {
		t.Fatalf("got %v, want 3.5", got)
	}
}
