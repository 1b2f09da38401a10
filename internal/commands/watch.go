package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmagro/jsondp/codec"
	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/ethrpc"
	"github.com/dmagro/jsondp/internal/jsonval"
	"github.com/dmagro/jsondp/internal/kv"
	"github.com/dmagro/jsondp/internal/logging"
)

// watchCmd is the half-finished log-streaming loop: it polls for new
// blocks and persists each one, codec-encoded, into the key/value store.
// It does not yet detect reorgs or resume from the last stored height —
// every run starts from the node's current tip.
func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for new blocks and persist each one, codec-encoded, to the key/value store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = cfg.Watch.Interval
			}

			fieldDict, valueDict, err := resolveDictionaries(cmd)
			if err != nil {
				return err
			}

			store, err := kv.Open(cmd.Context(), cfg.Database.URL, cfg.Database.Table)
			if err != nil {
				return err
			}
			defer store.Close()

			rpcClient := ethrpc.New(cfg.RPC.URL, cfg.RPC.Timeout)
			log := logging.Default()

			return runWatch(cmd.Context(), rpcClient, store, fieldDict, valueDict, interval, log)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (defaults to config)")
	return cmd
}

func runWatch(parent context.Context, client *ethrpc.Client, store *kv.PostgresStore,
	fieldDict, valueDict dictionary.Dictionary, interval time.Duration, log *logging.Logger) error {

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down")
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastSeen uint64

	poll := func() error {
		g, gctx := errgroup.WithContext(ctx)
		var height uint64

		g.Go(func() error {
			_, h, err := client.Connect(gctx)
			if err != nil {
				return err
			}
			height = h
			return nil
		})
		if err := g.Wait(); err != nil {
			log.Warn("poll failed: %v", err)
			return nil
		}

		from := lastSeen + 1
		if lastSeen == 0 {
			from = height // first poll: only persist the current tip
		}
		for n := from; n <= height; n++ {
			if err := persistBlock(ctx, client, store, fieldDict, valueDict, n); err != nil {
				log.Warn("block %d: %v", n, err)
				continue
			}
			log.Info("stored block %d", n)
			lastSeen = n
		}
		return nil
	}

	if err := poll(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			if err := poll(); err != nil {
				return err
			}
		}
	}
}

func persistBlock(ctx context.Context, client *ethrpc.Client, store *kv.PostgresStore,
	fieldDict, valueDict dictionary.Dictionary, n uint64) error {

	// eth_getBlockByNumber wants block heights as 0x-prefixed hex, never
	// decimal or a tag, since n is always a concrete height here.
	blockNum := fmt.Sprintf("0x%x", n)
	resp, err := client.Batch(ctx, []ethrpc.Request{ethrpc.GetBlockByNumber(blockNum, false)})
	if err != nil {
		return err
	}
	raw, err := resp.Result("b" + blockNum)
	if err != nil {
		return err
	}

	v, err := jsonval.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse block json: %w", err)
	}

	wire, err := codec.Encode(v, fieldDict, valueDict)
	if err != nil {
		return fmt.Errorf("encode block: %w", err)
	}

	return store.Set(ctx, uint32(n), wire)
}
