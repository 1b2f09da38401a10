package codec

import "github.com/dmagro/jsondp/internal/jsonval"

// bigNumberHex reports whether obj is the well-known BigNumber shape
// (spec §3: exactly two keys, type == "BigNumber" and hex a hex-string),
// returning its hex field when so.
func bigNumberHex(obj *jsonval.Object) (string, bool) {
	if obj.Len() != 2 {
		return "", false
	}
	typeVal, ok := obj.Get("type")
	if !ok || typeVal.Kind() != jsonval.KindString || typeVal.Str() != "BigNumber" {
		return "", false
	}
	hexVal, ok := obj.Get("hex")
	if !ok || hexVal.Kind() != jsonval.KindString || !isHexString(hexVal.Str()) {
		return "", false
	}
	return hexVal.Str(), true
}
