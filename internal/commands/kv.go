package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/internal/kv"
)

func kvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Read and write the codec-encoded block store",
	}
	cmd.AddCommand(kvGetCmd(), kvSetCmd())
	return cmd
}

func openStore(cmd *cobra.Command) (*kv.PostgresStore, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return kv.Open(context.Background(), cfg.Database.URL, cfg.Database.Table)
}

func kvGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Fetch the bytes stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid key %q: %w", args[0], err)
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			v, ok, err := store.Get(cmd.Context(), uint32(key))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no value stored under key %d", key)
			}
			os.Stdout.Write(v)
			return nil
		},
	}
}

func kvSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <file|->",
		Short: "Store the bytes read from a file under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid key %q: %w", args[0], err)
			}
			data, err := readInput(args[1])
			if err != nil {
				return err
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			return store.Set(cmd.Context(), uint32(key), data)
		},
	}
}
