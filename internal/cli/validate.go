package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-schemex"
	"github.com/goliatone/go-schemex/pkg/schema"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema.json> <data.json>",
		Short: "Validate a data document against an extracted schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], args[1])
		},
	}
}

func runValidate(cmd *cobra.Command, schemaPath, dataPath string) error {
	rawSchema, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", schemaPath, err)
	}
	var ds schema.DataSchema
	if err := json.Unmarshal(rawSchema, &ds); err != nil {
		return fmt.Errorf("parsing schema %s: %w", schemaPath, err)
	}

	rawData, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dataPath, err)
	}
	var data any
	if err := json.Unmarshal(rawData, &data); err != nil {
		return fmt.Errorf("parsing data %s: %w", dataPath, err)
	}

	result := schemex.Validate(data, &ds)
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	if !result.Valid {
		return fmt.Errorf("%d validation error(s)", len(result.Errors))
	}
	return nil
}
