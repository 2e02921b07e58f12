// Package config loads CLI configuration from an optional YAML file merged
// with command-line flags; flags win over file values.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

// DefaultFile is looked up in the working directory when --config is unset.
const DefaultFile = "schemex.yaml"

// Config carries the settings shared by the CLI commands.
type Config struct {
	Patterns  string `koanf:"patterns"`
	Format    string `koanf:"format"`
	Component string `koanf:"component"`
	Output    string `koanf:"output"`
	All       bool   `koanf:"all"`
}

// BindFlags registers the shared flags on the root command.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: schemex.yaml)")
	flags.StringP("patterns", "p", "", "Pattern overrides YAML file")
	flags.StringP("format", "f", "", "Output format: json, markdown, or ts")
	flags.String("component", "", "Component key to select from multi-component input")
	flags.StringP("output", "o", "", "Output file (stdout if empty)")
	flags.Bool("all", false, "Emit every component from multi-component input")
}

// Load merges the config file (when present) with flag values.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	cfg := &Config{Format: "json"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	switch cfg.Format {
	case "json", "markdown", "ts":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	out := make(map[string]any)
	for _, name := range []string{"patterns", "format", "component", "output"} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetString(name)
			out[name] = value
		}
	}
	if cmd.Flags().Changed("all") {
		value, _ := cmd.Flags().GetBool("all")
		out["all"] = value
	}
	return out
}
