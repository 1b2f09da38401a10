// Package dictionary implements the codec's bidirectional id<->bytes
// mapping (spec §4.2): a field dictionary for object keys and a value
// dictionary for string scalars are both instances of the same type.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dmagro/jsondp/internal/jsonval"
)

// Dictionary is the capability both the encoder and decoder consult. The
// built-in no-op implementation (NoDictionary) and the mutable map-backed
// one (Dict) both satisfy it, so callers pass the interface, never a null
// pointer, for dictionary-less use (spec §9 re-architecture cue).
type Dictionary interface {
	Insert(b []byte) uint32
	InsertAs(b []byte, id uint32)
	LookupBytes(b []byte) (uint32, bool)
	LookupID(id uint32) ([]byte, bool)
	Learn(v jsonval.Value)
	WriteText(w io.Writer) error
}

// Dict is a mutable, bidirectional id<->bytes dictionary. Ids are 1-based;
// id 0 is reserved and never assigned.
type Dict struct {
	byID    map[uint32][]byte
	byBytes map[string]uint32
}

// New returns an empty dictionary.
func New() *Dict {
	return &Dict{
		byID:    make(map[uint32][]byte),
		byBytes: make(map[string]uint32),
	}
}

// Insert assigns b the next id (current size + 1) unless it is already
// present, in which case its existing id is returned unchanged.
func (d *Dict) Insert(b []byte) uint32 {
	if id, ok := d.byBytes[string(b)]; ok {
		return id
	}
	id := uint32(len(d.byID) + 1)
	d.InsertAs(b, id)
	return id
}

// InsertAs inserts b under a caller-chosen id, used when loading a frozen
// dictionary (e.g. the built-in Ethereum field dictionary).
func (d *Dict) InsertAs(b []byte, id uint32) {
	cp := append([]byte(nil), b...)
	d.byID[id] = cp
	d.byBytes[string(cp)] = id
}

// LookupBytes returns the id assigned to b, if any.
func (d *Dict) LookupBytes(b []byte) (uint32, bool) {
	id, ok := d.byBytes[string(b)]
	return id, ok
}

// LookupID returns the bytes assigned to id, if any.
func (d *Dict) LookupID(id uint32) ([]byte, bool) {
	b, ok := d.byID[id]
	return b, ok
}

// Learn walks v, inserting every distinct object key it finds. String
// values are never learned, only keys.
func (d *Dict) Learn(v jsonval.Value) {
	switch v.Kind() {
	case jsonval.KindObject:
		v.Object().Range(func(key string, val jsonval.Value) {
			d.Insert([]byte(key))
			d.Learn(val)
		})
	case jsonval.KindArray:
		for _, item := range v.Array() {
			d.Learn(item)
		}
	}
}

// IDs returns every assigned id in ascending order.
func (d *Dict) IDs() []uint32 {
	ids := make([]uint32, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WriteText writes one "<id>: <value>\n" line per entry, ids in ascending
// order, for determinism. The value is written raw; unlike the source this
// is grounded on, no quotes are added, since the read side (per spec §6)
// takes everything after the colon verbatim and quoting it here would
// break the read_text(write_text(d)) == d round trip.
func (d *Dict) WriteText(w io.Writer) error {
	ids := make([]uint32, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d: %s\n", id, d.byID[id]); err != nil {
			return fmt.Errorf("dictionary: write_text: %w", err)
		}
	}
	return nil
}

// ReadText parses the text form written by WriteText. Blank lines and
// lines beginning with '#' (after trimming) are skipped; every other line
// must start with a decimal id followed by ':'.
func ReadText(r io.Reader) (*Dict, error) {
	d := New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, fmt.Errorf("dictionary: read_text: line %d: missing '<u32>:' prefix", lineNo)
		}
		idPart := strings.TrimSpace(line[:idx])
		id, err := strconv.ParseUint(idPart, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("dictionary: read_text: line %d: invalid id %q: %w", lineNo, idPart, err)
		}
		value := strings.TrimSpace(line[idx+1:])
		d.InsertAs([]byte(value), uint32(id))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read_text: %w", err)
	}
	return d, nil
}

// NoDictionary never holds an entry and never matches a lookup: the
// dictionary-less placeholder (spec §9: "the no-op dictionary is a
// natural empty implementation, not a null pointer").
type NoDictionary struct{}

func (NoDictionary) Insert(b []byte) uint32                { return 0 }
func (NoDictionary) InsertAs(b []byte, id uint32)           {}
func (NoDictionary) LookupBytes(b []byte) (uint32, bool)    { return 0, false }
func (NoDictionary) LookupID(id uint32) ([]byte, bool)      { return nil, false }
func (NoDictionary) Learn(v jsonval.Value)                  {}
func (NoDictionary) WriteText(w io.Writer) error            { return nil }

var (
	_ Dictionary = (*Dict)(nil)
	_ Dictionary = NoDictionary{}
)
