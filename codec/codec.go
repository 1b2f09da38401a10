// Package codec implements the jsondp wire format: a tagged byte stream
// for JSON values, specialized for Ethereum JSON-RPC payloads (spec §4).
//
// Every encoded value starts with a single tag byte. Its low 5 bits pick
// the variant; bit 5 marks a short string substituted by a value-dictionary
// id; bits 7:6 carry the width of a field-dictionary id, and are only ever
// set on the tag byte of an object entry's value.
package codec

import (
	"bytes"

	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/jsonval"
)

// Tag codes, low 5 bits of the tag byte (spec §4.3).
const (
	codeFalse = 0
	codeTrue  = 1
	codeU8    = 2
	codeI8    = 3
	codeB8    = 4
	codeU16   = 5
	codeI16   = 6
	codeU32   = 7
	codeI32   = 8
	codeU64   = 9
	codeI64   = 10
	codeB64   = 11
	codeB16   = 12
	codeB32   = 13
	codeB128  = 14
	codeB160  = 15
	codeB256  = 16
	codeF64   = 17
	codeZero  = 18
	codeDB    = 19
	codeDS    = 20
	codeDA    = 21
	codeDO    = 22
	codeDWB   = 23
	codeDWS   = 24
	codeDWA   = 25
	codeDWO   = 26
	codeNull  = 31
)

const (
	valueDictFlag    = 0x20
	fieldWidthMask   = 0xC0
	fieldWidthShift  = 6
	maxShortLen      = 255
	maxLongLen       = 65535
)

// Encode walks v and writes its tagged byte-stream form, consulting
// fieldDict for object keys and valueDict for string scalars. Either may
// be dictionary.NoDictionary{} for dictionary-less use.
func Encode(v jsonval.Value, fieldDict, valueDict dictionary.Dictionary) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v, fieldDict, valueDict, plainEmit(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one tagged value from data, the inverse of Encode.
func Decode(data []byte, fieldDict, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	r := bytes.NewReader(data)
	return decodeValue(r, fieldDict, valueDict)
}
