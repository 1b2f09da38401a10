package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/internal/ethrpc"
)

func rpcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpc",
		Short: "Talk directly to the configured Ethereum JSON-RPC node",
	}
	cmd.AddCommand(rpcCallCmd())
	return cmd
}

func rpcCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [params...]",
		Short: "Send a single JSON-RPC method call as a one-request batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			method := args[0]
			params := make([]any, 0, len(args)-1)
			for _, p := range args[1:] {
				params = append(params, coerceParam(p))
			}

			req := ethrpc.Request{JSONRPC: "2.0", ID: "call", Method: method, Params: params}
			client := ethrpc.New(cfg.RPC.URL, cfg.RPC.Timeout)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.RPC.Timeout)
			defer cancel()

			resp, err := client.Batch(ctx, []ethrpc.Request{req})
			if err != nil {
				return err
			}
			result, err := resp.Result("call")
			if err != nil {
				return err
			}

			var pretty any
			if err := json.Unmarshal(result, &pretty); err != nil {
				fmt.Println(string(result))
				return nil
			}
			out, err := json.MarshalIndent(pretty, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

// coerceParam turns a command-line argument into the JSON type eth_* methods
// expect: "true"/"false" become booleans, decimal integers become numbers,
// anything else (including hex strings and tags like "latest") stays a
// string. rpc call is a generic passthrough, so this never assumes which
// position holds a block identifier the way watch's persistBlock does.
func coerceParam(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}
