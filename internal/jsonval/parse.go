package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes a JSON document into a Value, preserving object key order
// and the narrowest integer shape (i64 vs u64) a number was written in.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return numberFromJSONNumber(t)
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			var arr []Value
			for dec.More() {
				v, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil { // consume closing ]
				return Value{}, err
			}
			return Array(arr), nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("jsonval: object key is not a string")
				}
				val, err := parseValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume closing }
				return Value{}, err
			}
			return Obj(obj), nil
		}
	}
	return Value{}, fmt.Errorf("jsonval: unexpected token %v", tok)
}

// numberFromJSONNumber picks the narrowest native shape a literal fits:
// unsigned for non-negative integers, signed for negative integers, and
// float64 once a decimal point or exponent is present.
func numberFromJSONNumber(n json.Number) (Value, error) {
	s := string(n)
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jsonval: invalid number %q: %w", s, err)
		}
		return Float64(f), nil
	}
	if strings.HasPrefix(s, "-") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return Value{}, fmt.Errorf("jsonval: invalid number %q: %w", s, err)
			}
			return Float64(f), nil
		}
		return Int64(i), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return Value{}, fmt.Errorf("jsonval: invalid number %q: %w", s, err)
		}
		return Float64(f), nil
	}
	return Uint64(u), nil
}
