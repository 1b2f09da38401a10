package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/codec"
	"github.com/dmagro/jsondp/internal/jsonval"
)

func decodeCmd() *cobra.Command {
	var inFormat string

	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode jsondp's binary wire format back into JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			if inFormat == "hex" {
				trimmed := bytes.TrimSpace(data)
				decoded, err := hex.DecodeString(string(trimmed))
				if err != nil {
					return fmt.Errorf("decode hex input: %w", err)
				}
				data = decoded
			}

			fieldDict, valueDict, err := resolveDictionaries(cmd)
			if err != nil {
				return err
			}

			v, err := codec.Decode(data, fieldDict, valueDict)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			fmt.Println(jsonval.Stringify(v))
			return nil
		},
	}

	cmd.Flags().StringVar(&inFormat, "format", "raw", "Input format: raw|hex")
	return cmd
}
