package ethrpc

import (
	"strconv"
	"strings"
)

// ParseHexUint64 converts a hex-encoded string ("0x1444f3b") or a bare
// decimal string ("15") to a uint64, accepting either since different RPC
// methods (net_version vs eth_blockNumber) disagree on which one to send.
func ParseHexUint64(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
