// Package ethrpc is a minimal batch JSON-RPC client for Ethereum nodes.
//
// Unlike a single-request client, every call here sends an array of
// requests in one HTTP POST and matches responses back to requests by their
// string id — the same pattern eth-logs' EthBatchClient used around ureq,
// rebuilt here on net/http.
package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is a single JSON-RPC 2.0 call, meant to travel inside a batch.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// LatestBlock requests the current block height.
func LatestBlock() Request {
	return Request{JSONRPC: "2.0", ID: "latest", Method: "eth_blockNumber", Params: []any{}}
}

// NetVersion requests the network/chain id.
func NetVersion() Request {
	return Request{JSONRPC: "2.0", ID: "net", Method: "net_version", Params: []any{}}
}

// GetBlockByNumber requests a block by height (hex string or a tag such as
// "latest"). fullTx selects full transaction objects over bare hashes.
func GetBlockByNumber(blockNum string, fullTx bool) Request {
	return Request{
		JSONRPC: "2.0",
		ID:      "b" + blockNum,
		Method:  "eth_getBlockByNumber",
		Params:  []any{blockNum, fullTx},
	}
}

// GetTransactionByHash requests a transaction by its hash.
func GetTransactionByHash(hash string) Request {
	return Request{JSONRPC: "2.0", ID: "x" + hash, Method: "eth_getTransactionByHash", Params: []any{hash}}
}

// GetTransactionReceipt requests a transaction's receipt by hash.
func GetTransactionReceipt(hash string) Request {
	return Request{JSONRPC: "2.0", ID: "r" + hash, Method: "eth_getTransactionReceipt", Params: []any{hash}}
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string { return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message) }

type rawEntry struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

// BatchResponse holds the raw per-id results of one batch call.
type BatchResponse struct {
	byID map[string]rawEntry
}

// ErrNotFound is returned when a requested id is absent from the batch
// response — the node either never answered it or dropped it silently.
var ErrNotFound = fmt.Errorf("ethrpc: id not found in batch response")

// Result returns the raw JSON result for id, or an error if the node
// reported an RPC-level error or never answered that id.
func (r *BatchResponse) Result(id string) (json.RawMessage, error) {
	entry, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if entry.Error != nil {
		return nil, entry.Error
	}
	return entry.Result, nil
}

// Client is an HTTP JSON-RPC batch client for a single node.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a Client with the given overall request timeout.
func New(url string, timeout time.Duration) *Client {
	return &Client{url: url, httpClient: &http.Client{Timeout: timeout}}
}

// Batch sends every request in reqs as a single JSON-RPC batch POST and
// returns their results keyed by id.
func (c *Client) Batch(ctx context.Context, reqs []Request) (*BatchResponse, error) {
	body, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("ethrpc: marshal batch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ethrpc: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ethrpc: request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ethrpc: read response: %w", err)
	}

	// A node that rejects the whole batch (bad JSON, auth failure) answers
	// with a single object instead of an array — check for that first.
	var single struct {
		Error *rpcError `json:"error"`
	}
	if err := json.Unmarshal(data, &single); err == nil && single.Error != nil {
		return nil, single.Error
	}

	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ethrpc: decode batch response: %w", err)
	}

	byID := make(map[string]rawEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return &BatchResponse{byID: byID}, nil
}

// Connect sends a net_version + eth_blockNumber batch and returns the chain
// id and latest block height, parsing either hex or decimal string results.
func (c *Client) Connect(ctx context.Context) (chainID uint64, blockHeight uint64, err error) {
	resp, err := c.Batch(ctx, []Request{NetVersion(), LatestBlock()})
	if err != nil {
		return 0, 0, err
	}

	netResult, err := resp.Result("net")
	if err != nil {
		return 0, 0, fmt.Errorf("ethrpc: net_version: %w", err)
	}
	chainID, err = parseRPCUint(netResult)
	if err != nil {
		return 0, 0, fmt.Errorf("ethrpc: parse chain id: %w", err)
	}

	latestResult, err := resp.Result("latest")
	if err != nil {
		return 0, 0, fmt.Errorf("ethrpc: eth_blockNumber: %w", err)
	}
	blockHeight, err = parseRPCUint(latestResult)
	if err != nil {
		return 0, 0, fmt.Errorf("ethrpc: parse block height: %w", err)
	}
	return chainID, blockHeight, nil
}

// parseRPCUint accepts either a JSON number or a hex/decimal string, both of
// which Ethereum nodes use interchangeably across methods like net_version.
func parseRPCUint(raw json.RawMessage) (uint64, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return ParseHexUint64(asString)
	}
	var asNumber uint64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	return 0, fmt.Errorf("value is neither a number nor a string: %s", raw)
}
