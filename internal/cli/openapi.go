package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-schemex/internal/config"
	"github.com/goliatone/go-schemex/pkg/openapi"
)

func newOpenAPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi <file>",
		Short: "Export extracted schemas as an OpenAPI 3 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			return runOpenAPI(cmd, cfg, args[0])
		},
	}
	cmd.Flags().String("title", "", "Document title (defaults to the component name)")
	cmd.Flags().String("doc-version", "0.0.0", "Document version")
	return cmd
}

func runOpenAPI(cmd *cobra.Command, cfg *config.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	results, err := extractInput(pipeline, path, string(raw))
	if err != nil {
		return err
	}
	selected, err := selectComponents(cfg, results)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	version, _ := cmd.Flags().GetString("doc-version")

	for _, name := range sortedKeys(selected) {
		doc, err := openapi.Export(name, selected[name], openapi.Info{Title: title, Version: version})
		if err != nil {
			return err
		}
		encoded, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
		if err := writeOutput(cmd, cfg.Output, string(encoded)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
