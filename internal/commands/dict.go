package commands

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/jsonval"
)

func dictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect and grow field/value dictionaries",
	}
	cmd.AddCommand(dictLearnCmd(), dictShowCmd())
	return cmd
}

func dictLearnCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "learn <json-file>",
		Short: "Learn object keys from a JSON document into a dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldDictPath, _ := cmd.Flags().GetString("field-dict")

			d := dictionary.New()
			if fieldDictPath != "" {
				if f, err := os.Open(fieldDictPath); err == nil {
					loaded, err := dictionary.ReadText(f)
					f.Close()
					if err != nil {
						return fmt.Errorf("read existing dictionary: %w", err)
					}
					d = loaded
				}
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			v, err := jsonval.Parse(data)
			if err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}
			d.Learn(v)

			if outPath == "" {
				outPath = fieldDictPath
			}
			if outPath == "" {
				return fmt.Errorf("no --out path and no --field-dict to write back to")
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()
			return d.WriteText(out)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the learned dictionary here (default: --field-dict)")
	return cmd
}

func dictShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dict-file>",
		Short: "Render a dictionary's id/bytes table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			d, err := dictionary.ReadText(f)
			if err != nil {
				return fmt.Errorf("read dictionary: %w", err)
			}

			headerFmt := func(format string, vals ...interface{}) string {
				return fmt.Sprintf(format, vals...)
			}
			tbl := table.New("ID", "Value")
			tbl.WithHeaderFormatter(headerFmt)
			for _, id := range d.IDs() {
				b, _ := d.LookupID(id)
				tbl.AddRow(id, string(b))
			}
			tbl.Print()
			return nil
		},
	}
}
