package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/jsondp/internal/dictionary"
	"github.com/dmagro/jsondp/internal/ethdict"
)

// resolveDictionaries opens the field and value dictionaries named by the
// --field-dict/--value-dict persistent flags, falling back to the built-in
// Ethereum field dictionary and a no-op value dictionary respectively.
func resolveDictionaries(cmd *cobra.Command) (field, value dictionary.Dictionary, err error) {
	fieldPath, _ := cmd.Flags().GetString("field-dict")
	valuePath, _ := cmd.Flags().GetString("value-dict")

	field, err = openDictOrDefault(fieldPath, ethdict.New())
	if err != nil {
		return nil, nil, fmt.Errorf("field dictionary: %w", err)
	}
	value, err = openDictOrDefault(valuePath, dictionary.NoDictionary{})
	if err != nil {
		return nil, nil, fmt.Errorf("value dictionary: %w", err)
	}
	return field, value, nil
}

func openDictOrDefault(path string, fallback dictionary.Dictionary) (dictionary.Dictionary, error) {
	if path == "" {
		return fallback, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dictionary.ReadText(f)
}
