package codec

import (
	"bytes"
	"fmt"

	"github.com/dmagro/jsondp/internal/bytesio"
	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/jsonval"
)

// tagEmitter writes a value's merged tag byte (code OR'd with any prefix
// bits) and whatever must follow it before the value's own payload — for
// an object entry whose key was field-dictionary-substituted, that's the
// field-dictionary id (spec §4.3: "the id itself ... before any value
// bytes"). Every encode* function below computes its code first and
// defers writing the tag byte to the emitter it was given, so the id can
// be slotted in between the tag byte and the payload.
type tagEmitter func(code byte) error

// plainEmit writes the tag byte with no prefix bits: the top-level value,
// array elements, and an object entry whose key was inline.
func plainEmit(w *bytes.Buffer) tagEmitter {
	return func(code byte) error {
		return bytesio.WriteU8(w, code)
	}
}

// fieldDictEmit writes the tag byte with the field-dictionary id-width
// bits set, then the id itself, narrowest width that fits.
func fieldDictEmit(w *bytes.Buffer, id uint32) tagEmitter {
	return func(code byte) error {
		switch {
		case id <= 0xFF:
			if err := bytesio.WriteU8(w, code|(1<<fieldWidthShift)); err != nil {
				return err
			}
			return bytesio.WriteU8(w, uint8(id))
		case id <= 0xFFFF:
			if err := bytesio.WriteU8(w, code|(2<<fieldWidthShift)); err != nil {
				return err
			}
			return bytesio.WriteU16LE(w, uint16(id))
		default:
			if err := bytesio.WriteU8(w, code|(3<<fieldWidthShift)); err != nil {
				return err
			}
			return bytesio.WriteU32LE(w, id)
		}
	}
}

func encodeValue(w *bytes.Buffer, v jsonval.Value, fieldDict, valueDict dictionary.Dictionary, emit tagEmitter) error {
	switch v.Kind() {
	case jsonval.KindNull:
		return emit(codeNull)
	case jsonval.KindBool:
		if v.Bool() {
			return emit(codeTrue)
		}
		return emit(codeFalse)
	case jsonval.KindNumber:
		return encodeNumber(w, v.Number(), emit)
	case jsonval.KindString:
		return encodeString(w, v.Str(), valueDict, emit)
	case jsonval.KindArray:
		return encodeArray(w, v.Array(), fieldDict, valueDict, emit)
	case jsonval.KindObject:
		if hexStr, ok := bigNumberHex(v.Object()); ok {
			return encodeBigNumber(w, hexStr, emit)
		}
		return encodeObject(w, v.Object(), fieldDict, valueDict, emit)
	default:
		return fmt.Errorf("codec: unknown value kind %v", v.Kind())
	}
}

func encodeNumber(w *bytes.Buffer, n jsonval.Number, emit tagEmitter) error {
	switch n.Kind {
	case jsonval.NumberF64:
		if err := emit(codeF64); err != nil {
			return err
		}
		return bytesio.WriteF64LE(w, n.F64)
	case jsonval.NumberU64:
		return encodeUnsigned(w, n.U64, emit)
	default:
		return encodeSigned(w, n.I64, emit)
	}
}

func encodeUnsigned(w *bytes.Buffer, u uint64, emit tagEmitter) error {
	switch {
	case u == 0:
		return emit(codeZero)
	case u <= 0xFF:
		if err := emit(codeU8); err != nil {
			return err
		}
		return bytesio.WriteU8(w, uint8(u))
	case u <= 0xFFFF:
		if err := emit(codeU16); err != nil {
			return err
		}
		return bytesio.WriteU16LE(w, uint16(u))
	case u <= 0xFFFFFFFF:
		if err := emit(codeU32); err != nil {
			return err
		}
		return bytesio.WriteU32LE(w, uint32(u))
	default:
		if err := emit(codeU64); err != nil {
			return err
		}
		return bytesio.WriteU64LE(w, u)
	}
}

func encodeSigned(w *bytes.Buffer, i int64, emit tagEmitter) error {
	switch {
	case i == 0:
		return emit(codeZero)
	case i >= -128 && i <= 127:
		if err := emit(codeI8); err != nil {
			return err
		}
		return bytesio.WriteI8(w, int8(i))
	case i >= -32768 && i <= 32767:
		if err := emit(codeI16); err != nil {
			return err
		}
		return bytesio.WriteI16LE(w, int16(i))
	case i >= -2147483648 && i <= 2147483647:
		if err := emit(codeI32); err != nil {
			return err
		}
		return bytesio.WriteI32LE(w, int32(i))
	default:
		if err := emit(codeI64); err != nil {
			return err
		}
		return bytesio.WriteI64LE(w, i)
	}
}

func encodeString(w *bytes.Buffer, s string, valueDict dictionary.Dictionary, emit tagEmitter) error {
	if isHexString(s) {
		return encodeHexString(w, s, emit)
	}
	return encodeGenericString(w, []byte(s), valueDict, emit)
}

func encodeHexString(w *bytes.Buffer, s string, emit tagEmitter) error {
	remainder := s[2:]
	natural, err := decodeHexRemainder(remainder)
	if err != nil {
		return err
	}
	code, width, ok := hexBucket(len(natural))
	if !ok {
		return encodeGenericBytes(w, natural, len(remainder), emit)
	}
	if err := emit(code); err != nil {
		return err
	}
	return bytesio.WriteRaw(w, hexPayload(natural, width))
}

// encodeGenericBytes writes a raw byte blob using the generic DB/DWB tags
// (no reversal — these render "0x<hex>" verbatim, per spec scenario 9).
// charLen is the hex-digit count of the string b was decoded from (before
// any odd-length padding); DWB's length field carries that character count,
// not len(b), so decodeLongBytes can undo the padding on the way back.
func encodeGenericBytes(w *bytes.Buffer, b []byte, charLen int, emit tagEmitter) error {
	switch {
	case len(b) <= maxShortLen:
		if err := emit(codeDB); err != nil {
			return err
		}
		if err := bytesio.WriteU8(w, uint8(len(b))); err != nil {
			return err
		}
		return bytesio.WriteRaw(w, b)
	case charLen <= maxLongLen:
		if err := emit(codeDWB); err != nil {
			return err
		}
		if err := bytesio.WriteU16LE(w, uint16(charLen)); err != nil {
			return err
		}
		return bytesio.WriteRaw(w, b)
	default:
		return fmt.Errorf("codec: byte blob too long (%d chars > %d)", charLen, maxLongLen)
	}
}

func encodeGenericString(w *bytes.Buffer, b []byte, valueDict dictionary.Dictionary, emit tagEmitter) error {
	if id, ok := valueDict.LookupBytes(b); ok {
		if err := emit(codeDS|valueDictFlag); err != nil {
			return err
		}
		return bytesio.WriteU32LE(w, id)
	}
	switch {
	case len(b) <= maxShortLen:
		if err := emit(codeDS); err != nil {
			return err
		}
		if err := bytesio.WriteU8(w, uint8(len(b))); err != nil {
			return err
		}
		return bytesio.WriteRaw(w, b)
	case len(b) <= maxLongLen:
		if err := emit(codeDWS); err != nil {
			return err
		}
		if err := bytesio.WriteU16LE(w, uint16(len(b))); err != nil {
			return err
		}
		return bytesio.WriteRaw(w, b)
	default:
		return fmt.Errorf("codec: string too long (%d > %d)", len(b), maxLongLen)
	}
}

func encodeArray(w *bytes.Buffer, items []jsonval.Value, fieldDict, valueDict dictionary.Dictionary, emit tagEmitter) error {
	n := len(items)
	switch {
	case n <= maxShortLen:
		if err := emit(codeDA); err != nil {
			return err
		}
		if err := bytesio.WriteU8(w, uint8(n)); err != nil {
			return err
		}
	case n <= maxLongLen:
		if err := emit(codeDWA); err != nil {
			return err
		}
		if err := bytesio.WriteU16LE(w, uint16(n)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("codec: array too long (%d > %d)", n, maxLongLen)
	}
	for _, item := range items {
		if err := encodeValue(w, item, fieldDict, valueDict, plainEmit(w)); err != nil {
			return err
		}
	}
	return nil
}

func encodeObject(w *bytes.Buffer, obj *jsonval.Object, fieldDict, valueDict dictionary.Dictionary, emit tagEmitter) error {
	n := obj.Len()
	switch {
	case n <= maxShortLen:
		if err := emit(codeDO); err != nil {
			return err
		}
		if err := bytesio.WriteU8(w, uint8(n)); err != nil {
			return err
		}
	case n <= maxLongLen:
		if err := emit(codeDWO); err != nil {
			return err
		}
		if err := bytesio.WriteU16LE(w, uint16(n)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("codec: object too long (%d > %d)", n, maxLongLen)
	}
	var rangeErr error
	obj.Range(func(key string, val jsonval.Value) {
		if rangeErr != nil {
			return
		}
		rangeErr = encodeObjectEntry(w, key, val, fieldDict, valueDict)
	})
	return rangeErr
}

func encodeObjectEntry(w *bytes.Buffer, key string, val jsonval.Value, fieldDict, valueDict dictionary.Dictionary) error {
	if id, ok := fieldDict.LookupBytes([]byte(key)); ok {
		return encodeValue(w, val, fieldDict, valueDict, fieldDictEmit(w, id))
	}
	keyBytes := []byte(key)
	if len(keyBytes) > maxShortLen {
		return fmt.Errorf("codec: inline object key too long (%d > %d)", len(keyBytes), maxShortLen)
	}
	if err := bytesio.WriteU8(w, codeDS); err != nil {
		return err
	}
	if err := bytesio.WriteU8(w, uint8(len(keyBytes))); err != nil {
		return err
	}
	if err := bytesio.WriteRaw(w, keyBytes); err != nil {
		return err
	}
	return encodeValue(w, val, fieldDict, valueDict, plainEmit(w))
}

func encodeBigNumber(w *bytes.Buffer, hexStr string, emit tagEmitter) error {
	remainder := hexStr[2:]
	natural, err := decodeHexRemainder(remainder)
	if err != nil {
		return err
	}
	return encodeGenericBytes(w, natural, len(remainder), emit)
}
