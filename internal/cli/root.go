// Package cli wires the schemex command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-schemex/internal/config"
)

// NewRootCmd builds the schemex command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schemex",
		Short:         "Extract data schemas from React component source",
		Long:          "schemex statically analyses component source text and recovers form fields, API calls, and a unified data schema with TypeScript and JSON-Schema views.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	config.BindFlags(root)

	root.AddCommand(newExtractCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newOpenAPICmd())
	return root
}
