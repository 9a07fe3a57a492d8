// Package cli provides Cobra-based CLI commands for the docaudit validation
// tool: single-document validation, batch runs, health scoring, schema
// inspection, and configuration checks.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupValidation    = "validation"
	GroupInspection    = "inspection"
	GroupConfiguration = "configuration"
)

var rootCmd = &cobra.Command{
	Use:   "docaudit",
	Short: "documentation validation and health scoring",
	Long: `docaudit validates structured documentation against versioned schemas.

Documents carry a delimited metadata block (or are structured YAML records),
and each validation produces a 0-100 compliance score plus a list of issues.
An independent four-factor health score supports fleet-wide dashboards.`,
	Example: `  # Validate a single document (type auto-detected)
  docaudit validate docs/components/parser-reference.md

  # Validate a whole documentation tree
  docaudit batch ./docs

  # Health score for one document
  docaudit health docs/foundation.md

  # Show the resolved schema for a document type
  docaudit schema component`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInspection, Title: "Inspection:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.PersistentFlags().StringP("config", "c", ".docaudit/config.json", "Path to config file")
	rootCmd.PersistentFlags().String("schemas-dir", "", "Directory of schema artifacts overriding the built-in set")
}
