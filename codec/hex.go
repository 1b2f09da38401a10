package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/dmagro/jsondp/internal/bytesio"
)

// isHexString reports whether s is a hex-string per spec §3: starts with
// the two ASCII bytes "0x" and is strictly longer than that prefix.
func isHexString(s string) bool {
	return len(s) > 2 && s[0] == '0' && s[1] == 'x'
}

// decodeHexRemainder turns the characters after "0x" into bytes, left-padding
// an odd-length remainder with a single zero nibble first.
func decodeHexRemainder(remainder string) ([]byte, error) {
	if len(remainder)%2 != 0 {
		remainder = "0" + remainder
	}
	b, err := hex.DecodeString(remainder)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid hex string %q: %w", remainder, err)
	}
	return b, nil
}

// hexPayload zero-pads natural (the big-endian bytes a hex string decodes
// to) up to width bytes and reverses it: B16/B32/B64/B128/B160/B256 all
// store a little-endian, fixed-width rendition of the same big-endian
// value (spec §4.3's asymmetric hex-path endianness). B160/B256 are
// specified as split u32+u128 / u128+u128 reads, but reading the two
// halves as independent little-endian integers and writing each back
// big-endian is arithmetically identical to reversing the whole buffer
// once, so a single width-parameterized helper covers every one of these
// tags without reaching for 128-bit arithmetic.
func hexPayload(natural []byte, width int) []byte {
	rev := bytesio.Reverse(natural)
	out := make([]byte, width)
	copy(out, rev)
	return out
}

// renderHexPayload is hexPayload's inverse: given width raw wire bytes,
// reverse them back to the natural big-endian order and hex-encode.
func renderHexPayload(wire []byte) string {
	return hex.EncodeToString(bytesio.Reverse(wire))
}

// hexBucket returns the tag code and wire width for a decoded hex-string
// byte length, per the classification table in spec §4.3. ok is false for
// lengths that fall to the generic DB/DWB blob tags instead.
func hexBucket(n int) (code byte, width int, ok bool) {
	switch {
	case n == 1:
		return codeB8, 1, true
	case n == 2:
		return codeB16, 2, true
	case n <= 4:
		return codeB32, 4, true
	case n <= 8:
		return codeB64, 8, true
	case n <= 16:
		return codeB128, 16, true
	case n <= 20:
		return codeB160, 20, true
	case n <= 32:
		return codeB256, 32, true
	default:
		return 0, 0, false
	}
}
