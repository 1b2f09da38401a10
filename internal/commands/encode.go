package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/codec"
	"github.com/dmagro/jsondp/internal/jsonval"
)

func encodeCmd() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "encode <file|->",
		Short: "Encode a JSON document into jsondp's binary wire format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			v, err := jsonval.Parse(data)
			if err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}

			fieldDict, valueDict, err := resolveDictionaries(cmd)
			if err != nil {
				return err
			}

			wire, err := codec.Encode(v, fieldDict, valueDict)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if outFormat == "hex" {
				fmt.Println(hex.EncodeToString(wire))
			} else {
				os.Stdout.Write(wire)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "raw", "Output format: raw|hex")
	return cmd
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
