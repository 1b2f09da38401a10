package codec

import (
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dmagro/jsondp/internal/bytesio"
	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/jsonval"
)

func decodeValue(r io.Reader, fieldDict, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	tagByte, err := bytesio.ReadU8(r)
	if err != nil {
		return jsonval.Value{}, err
	}
	code := tagByte & 0x1F
	useVD := tagByte&valueDictFlag != 0
	return decodeByCode(r, code, useVD, fieldDict, valueDict)
}

func decodeByCode(r io.Reader, code byte, useVD bool, fieldDict, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	switch code {
	case codeFalse:
		return jsonval.Bool(false), nil
	case codeTrue:
		return jsonval.Bool(true), nil
	case codeU8:
		v, err := bytesio.ReadU8(r)
		return jsonval.Uint64(uint64(v)), err
	case codeI8:
		v, err := bytesio.ReadI8(r)
		return jsonval.Int64(int64(v)), err
	case codeB8:
		return decodeHexTag(r, 1)
	case codeU16:
		v, err := bytesio.ReadU16LE(r)
		return jsonval.Uint64(uint64(v)), err
	case codeI16:
		v, err := bytesio.ReadI16LE(r)
		return jsonval.Int64(int64(v)), err
	case codeU32:
		v, err := bytesio.ReadU32LE(r)
		return jsonval.Uint64(uint64(v)), err
	case codeI32:
		v, err := bytesio.ReadI32LE(r)
		return jsonval.Int64(int64(v)), err
	case codeU64:
		v, err := bytesio.ReadU64LE(r)
		return jsonval.Uint64(v), err
	case codeI64:
		v, err := bytesio.ReadI64LE(r)
		return jsonval.Int64(v), err
	case codeB64:
		return decodeHexTag(r, 8)
	case codeB16:
		return decodeHexTag(r, 2)
	case codeB32:
		return decodeHexTag(r, 4)
	case codeB128:
		return decodeHexTag(r, 16)
	case codeB160:
		return decodeHexTag(r, 20)
	case codeB256:
		return decodeHexTag(r, 32)
	case codeF64:
		v, err := bytesio.ReadF64LE(r)
		return jsonval.Float64(v), err
	case codeZero:
		return jsonval.Uint64(0), nil
	case codeDB:
		n, err := bytesio.ReadU8(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		raw, err := bytesio.ReadRaw(r, int(n))
		if err != nil {
			return jsonval.Value{}, err
		}
		return jsonval.String("0x" + hex.EncodeToString(raw)), nil
	case codeDS:
		return decodeShortString(r, useVD, valueDict)
	case codeDA:
		n, err := bytesio.ReadU8(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeArray(r, int(n), fieldDict, valueDict)
	case codeDO:
		n, err := bytesio.ReadU8(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeObject(r, int(n), fieldDict, valueDict)
	case codeDWB:
		return decodeLongBytes(r)
	case codeDWS:
		n, err := bytesio.ReadU16LE(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeInlineString(r, int(n))
	case codeDWA:
		n, err := bytesio.ReadU16LE(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeArray(r, int(n), fieldDict, valueDict)
	case codeDWO:
		n, err := bytesio.ReadU16LE(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeObject(r, int(n), fieldDict, valueDict)
	case codeNull:
		return jsonval.Null(), nil
	default:
		return jsonval.Value{}, fmt.Errorf("codec: unknown tag code %d", code)
	}
}

func decodeHexTag(r io.Reader, width int) (jsonval.Value, error) {
	wire, err := bytesio.ReadRaw(r, width)
	if err != nil {
		return jsonval.Value{}, err
	}
	return jsonval.String("0x" + renderHexPayload(wire)), nil
}

func decodeInlineString(r io.Reader, n int) (jsonval.Value, error) {
	raw, err := bytesio.ReadRaw(r, n)
	if err != nil {
		return jsonval.Value{}, err
	}
	if !utf8.Valid(raw) {
		return jsonval.Value{}, fmt.Errorf("codec: invalid UTF-8 in string tag")
	}
	return jsonval.String(string(raw)), nil
}

func decodeShortString(r io.Reader, useVD bool, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	if useVD {
		id, err := bytesio.ReadU32LE(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		if b, ok := valueDict.LookupID(id); ok {
			if !utf8.Valid(b) {
				return jsonval.Value{}, fmt.Errorf("codec: invalid UTF-8 in string tag")
			}
			return jsonval.String(string(b)), nil
		}
		n, err := bytesio.ReadU8(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		return decodeInlineString(r, int(n))
	}
	n, err := bytesio.ReadU8(r)
	if err != nil {
		return jsonval.Value{}, err
	}
	return decodeInlineString(r, int(n))
}

// decodeLongBytes implements DWB's char-length contract (spec §4.3): the
// u16 length field is the original hex-string's character count, not the
// byte count that follows, so an odd count means the payload carries one
// leading padding nibble to drop before rendering.
func decodeLongBytes(r io.Reader) (jsonval.Value, error) {
	charLen, err := bytesio.ReadU16LE(r)
	if err != nil {
		return jsonval.Value{}, err
	}
	byteLen := (int(charLen) + 1) / 2
	raw, err := bytesio.ReadRaw(r, byteLen)
	if err != nil {
		return jsonval.Value{}, err
	}
	full := hex.EncodeToString(raw)
	digits := full[len(full)-int(charLen):]
	return jsonval.String("0x" + digits), nil
}

func decodeArray(r io.Reader, n int, fieldDict, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	items := make([]jsonval.Value, n)
	for i := 0; i < n; i++ {
		v, err := decodeValue(r, fieldDict, valueDict)
		if err != nil {
			return jsonval.Value{}, err
		}
		items[i] = v
	}
	return jsonval.Array(items), nil
}

func decodeObject(r io.Reader, n int, fieldDict, valueDict dictionary.Dictionary) (jsonval.Value, error) {
	obj := jsonval.NewObject()
	for i := 0; i < n; i++ {
		h, err := bytesio.ReadU8(r)
		if err != nil {
			return jsonval.Value{}, err
		}
		code := h & 0x1F
		useVD := h&valueDictFlag != 0
		var key string
		if h&fieldWidthMask != 0 {
			width := (h & fieldWidthMask) >> fieldWidthShift
			var id uint32
			switch width {
			case 1:
				b, rerr := bytesio.ReadU8(r)
				id, err = uint32(b), rerr
			case 2:
				u, rerr := bytesio.ReadU16LE(r)
				id, err = uint32(u), rerr
			case 3:
				id, err = bytesio.ReadU32LE(r)
			default:
				err = fmt.Errorf("codec: impossible field-dictionary id width %d", width)
			}
			if err != nil {
				return jsonval.Value{}, err
			}
			keyBytes, ok := fieldDict.LookupID(id)
			if !ok {
				return jsonval.Value{}, fmt.Errorf("codec: field dictionary id %d not found", id)
			}
			key = string(keyBytes)
		} else {
			if code != codeDS {
				return jsonval.Value{}, fmt.Errorf("codec: unsupported inline key tag %d", code)
			}
			keyVal, err := decodeShortString(r, useVD, valueDict)
			if err != nil {
				return jsonval.Value{}, err
			}
			key = keyVal.Str()
		}
		var val jsonval.Value
		if h&fieldWidthMask != 0 {
			val, err = decodeByCode(r, code, useVD, fieldDict, valueDict)
		} else {
			val, err = decodeValue(r, fieldDict, valueDict)
		}
		if err != nil {
			return jsonval.Value{}, err
		}
		obj.Set(key, val)
	}
	return jsonval.Obj(obj), nil
}
