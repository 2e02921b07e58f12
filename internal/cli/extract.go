package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-schemex"
	"github.com/goliatone/go-schemex/internal/config"
	"github.com/goliatone/go-schemex/pkg/extract"
	"github.com/goliatone/go-schemex/pkg/patterns"
	"github.com/goliatone/go-schemex/pkg/report"
	"github.com/goliatone/go-schemex/pkg/schema"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract the schema bundle from a component or document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			return runExtract(cmd, cfg, args[0])
		},
	}
}

func runExtract(cmd *cobra.Command, cfg *config.Config, path string) error {
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
	if len(results) == 0 {
		return fmt.Errorf("no components recovered from %s", path)
	}

	selected, err := selectComponents(cfg, results)
	if err != nil {
		return err
	}

	rendered, err := renderResults(cfg, selected)
	if err != nil {
		return err
	}
	return writeOutput(cmd, cfg.Output, rendered)
}

// newPipeline builds the extraction facade, applying pattern overrides when
// configured.
func newPipeline(cfg *config.Config) (*schemex.Schemex, error) {
	if cfg.Patterns == "" {
		return schemex.New(), nil
	}
	raw, err := os.ReadFile(cfg.Patterns)
	if err != nil {
		return nil, fmt.Errorf("reading pattern overrides: %w", err)
	}
	overrides, err := patterns.ParseOverrides(raw)
	if err != nil {
		return nil, err
	}
	set := patterns.Default().WithOverrides(overrides)
	return schemex.New(schemex.WithExtractor(extract.New(extract.WithPatterns(set)))), nil
}

func extractInput(pipeline *schemex.Schemex, path, source string) (map[string]*schema.ExtractionResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".mdx":
		return pipeline.ExtractSchemaFromMDX(source), nil
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result, err := pipeline.ExtractSchemaFromCode(source, name)
	if err != nil {
		return nil, err
	}
	return map[string]*schema.ExtractionResult{name: result}, nil
}

// selectComponents narrows multi-component results down to the requested
// component, prompting interactively when several are available and neither
// --component nor --all was given.
func selectComponents(cfg *config.Config, results map[string]*schema.ExtractionResult) (map[string]*schema.ExtractionResult, error) {
	if cfg.Component != "" {
		result, ok := results[cfg.Component]
		if !ok {
			return nil, fmt.Errorf("component %q not found (have: %s)", cfg.Component, strings.Join(sortedKeys(results), ", "))
		}
		return map[string]*schema.ExtractionResult{cfg.Component: result}, nil
	}
	if cfg.All || len(results) == 1 {
		return results, nil
	}

	var picked string
	prompt := &survey.Select{
		Message: "Select a component:",
		Options: sortedKeys(results),
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}
	return map[string]*schema.ExtractionResult{picked: results[picked]}, nil
}

func renderResults(cfg *config.Config, results map[string]*schema.ExtractionResult) (string, error) {
	switch cfg.Format {
	case "markdown":
		renderer, err := report.New()
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, name := range sortedKeys(results) {
			section, err := renderer.Render(name, results[name])
			if err != nil {
				return "", err
			}
			b.WriteString(section)
			b.WriteString("\n")
		}
		return b.String(), nil
	case "ts":
		var b strings.Builder
		for _, name := range sortedKeys(results) {
			b.WriteString(results[name].TypeScript)
			b.WriteString("\n")
		}
		return b.String(), nil
	default:
		var payload any = results
		if len(results) == 1 {
			for _, result := range results {
				payload = result
			}
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding result: %w", err)
		}
		return string(encoded) + "\n", nil
	}
}

func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", path)
	return nil
}

func sortedKeys(results map[string]*schema.ExtractionResult) []string {
	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
