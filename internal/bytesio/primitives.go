// Package bytesio provides the fixed-width integer and float primitives the
// codec's tag payloads are built from (spec §4.1): everything on the
// numeric path is little-endian; a raw-copy primitive backs the length-
// prefixed byte and string payloads.
package bytesio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadU8 reads a single unsigned byte.
func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("bytesio: read u8: %w", err)
	}
	return b[0], nil
}

// WriteU8 writes a single unsigned byte.
func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// ReadI8 reads a byte and reinterprets it as a signed integer.
func ReadI8(r io.Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err
}

// WriteI8 writes a signed byte.
func WriteI8(w io.Writer, v int8) error { return WriteU8(w, uint8(v)) }

// ReadU16LE reads a little-endian uint16.
func ReadU16LE(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("bytesio: read u16: %w", err)
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// WriteU16LE writes a little-endian uint16.
func WriteU16LE(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadI16LE reads a little-endian int16.
func ReadI16LE(r io.Reader) (int16, error) {
	v, err := ReadU16LE(r)
	return int16(v), err
}

// WriteI16LE writes a little-endian int16.
func WriteI16LE(w io.Writer, v int16) error { return WriteU16LE(w, uint16(v)) }

// ReadU32LE reads a little-endian uint32.
func ReadU32LE(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("bytesio: read u32: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// WriteU32LE writes a little-endian uint32.
func WriteU32LE(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadI32LE reads a little-endian int32.
func ReadI32LE(r io.Reader) (int32, error) {
	v, err := ReadU32LE(r)
	return int32(v), err
}

// WriteI32LE writes a little-endian int32.
func WriteI32LE(w io.Writer, v int32) error { return WriteU32LE(w, uint32(v)) }

// ReadU64LE reads a little-endian uint64.
func ReadU64LE(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("bytesio: read u64: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteU64LE writes a little-endian uint64.
func WriteU64LE(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadI64LE reads a little-endian int64.
func ReadI64LE(r io.Reader) (int64, error) {
	v, err := ReadU64LE(r)
	return int64(v), err
}

// WriteI64LE writes a little-endian int64.
func WriteI64LE(w io.Writer, v int64) error { return WriteU64LE(w, uint64(v)) }

// ReadF64LE reads the bit pattern of a little-endian uint64 as an IEEE-754
// double.
func ReadF64LE(r io.Reader) (float64, error) {
	bits, err := ReadU64LE(r)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// WriteF64LE writes a float64's bit pattern as a little-endian uint64.
func WriteF64LE(w io.Writer, v float64) error {
	return WriteU64LE(w, math.Float64bits(v))
}

// ReadU128LE reads a raw 16-byte blob, byte 0 being the least significant.
// jsondp never does arithmetic on 128-bit quantities directly; the hex path
// (codec/hex.go) treats these bytes as an opaque little-endian buffer it
// reverses to render big-endian hex, so a plain array is all this needs.
func ReadU128LE(r io.Reader) ([16]byte, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return b, fmt.Errorf("bytesio: read u128: %w", err)
	}
	return b, nil
}

// WriteU128LE writes a raw 16-byte blob.
func WriteU128LE(w io.Writer, v [16]byte) error {
	_, err := w.Write(v[:])
	return err
}

// ReadRaw reads exactly n bytes. A short read is a decode error, per spec §7.
func ReadRaw(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("bytesio: short read (wanted %d bytes): %w", n, err)
	}
	return buf, nil
}

// WriteRaw writes buf verbatim.
func WriteRaw(w io.Writer, buf []byte) error {
	_, err := w.Write(buf)
	return err
}

// Reverse returns a new slice holding b's bytes in reverse order. Used by
// the hex-string path (codec/hex.go) to flip between the wire's
// little-endian layout and a hex string's big-endian digit order.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
