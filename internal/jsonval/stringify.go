package jsonval

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Stringify renders v as compact JSON text, preserving object key order.
// It exists for CLI display and round-trip tests; it is not used by the
// codec itself, which works directly on Value.
func Stringify(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.Number().String())
	case KindString:
		writeQuoted(sb, v.Str())
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.Array() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeValue(sb, item)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		first := true
		v.Object().Range(func(key string, val Value) {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeQuoted(sb, key)
			sb.WriteByte(':')
			writeValue(sb, val)
		})
		sb.WriteByte('}')
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	b, _ := json.Marshal(s) // reuse stdlib's JSON string escaping rules
	sb.Write(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
