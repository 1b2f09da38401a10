// Package commands implements jsondp's cobra subcommands, adapted from the
// teacher's cmd/monitor/main.go + internal/commands/*.go split: a root
// command carries persistent flags, and each subcommand lives in its own
// file.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/internal/config"
)

// Execute builds the root command tree and runs it.
func Execute() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsondp",
		Short:         "Binary codec and tooling for Ethereum JSON-RPC payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "config/jsondp.yaml", "Config file path")
	cmd.PersistentFlags().String("field-dict", "", "Field dictionary file (default: built-in Ethereum dictionary)")
	cmd.PersistentFlags().String("value-dict", "", "Value dictionary file (default: none)")

	cmd.AddCommand(encodeCmd(), decodeCmd(), dictCmd(), kvCmd(), rpcCmd(), watchCmd())
	return cmd
}

// loadConfig loads .env then the YAML config named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loadDotEnv()
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = cmd.Root().PersistentFlags().GetString("config")
	}
	return config.Load(path)
}

// loadDotEnv sets process environment variables from a .env file in the
// working directory, if one exists, so config.Load's ${VAR} expansion has
// secrets like DATABASE_URL/RPC_ETH_ADDR to expand against without them
// needing to live in config/jsondp.yaml itself. Absence is not an error;
// a deployment can rely on real environment variables instead.
func loadDotEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		os.Setenv(strings.TrimSpace(key), strings.Trim(strings.TrimSpace(value), `"'`))
	}
}
