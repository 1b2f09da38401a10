// Package ethdict provides the built-in Ethereum JSON-RPC field dictionary:
// a fixed set of field names frozen to specific ids (spec §4.2, P4). These
// ids are part of the external wire format and must never be reassigned.
package ethdict

import "github.com/dmagro/jsondp/internal/dictionary"

// fields is the frozen field-name -> id table. Do not add, remove, or
// renumber entries; a new field name needs a new id greater than the
// current maximum.
var fields = map[string]uint32{
	"accessList":           44,
	"address":              53,
	"baseFeePerGas":        11,
	"blockHash":            30,
	"blockNumber":          31,
	"chainId":              32,
	"contractAddress":      49,
	"cumulativeGasUsed":    50,
	"currentBlock":         4,
	"data":                 54,
	"difficulty":           12,
	"effectiveGasPrice":    51,
	"extraData":            13,
	"from":                 33,
	"gas":                  34,
	"gasLimit":             14,
	"gasPrice":             35,
	"gasUsed":              15,
	"hash":                 16,
	"highestBlock":         5,
	"id":                   1,
	"input":                36,
	"jsonrpc":              2,
	"knownStates":          9,
	"logIndex":             55,
	"logs":                 52,
	"logsBloom":            17,
	"maxFeePerGas":         45,
	"maxPriorityFeePerGas": 46,
	"miner":                18,
	"mixHash":              19,
	"nonce":                20,
	"number":               21,
	"parentHash":           22,
	"pulledStates":         10,
	"r":                    37,
	"receiptsRoot":         23,
	"removed":              56,
	"result":               3,
	"s":                    38,
	"sha3Uncles":           24,
	"size":                 25,
	"startingBlock":        6,
	"stateRoot":            26,
	"status":               59,
	"timestamp":            27,
	"to":                   39,
	"topics":               57,
	"totalDifficulty":      28,
	"transactionHash":      58,
	"transactionIndex":     40,
	"transactions":         29,
	"transactionsRoot":     47,
	"type":                 41,
	"uncles":               48,
	"v":                    42,
	"value":                43,
	"warpChunksAmount":     7,
	"warpChunksProcessed":  8,
}

// New returns a fresh *dictionary.Dict preloaded with the built-in
// Ethereum field names under their frozen ids.
func New() *dictionary.Dict {
	d := dictionary.New()
	for name, id := range fields {
		d.InsertAs([]byte(name), id)
	}
	return d
}
