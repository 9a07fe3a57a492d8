package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health <file>",
	Short: "Score a document's health",
	Long: `Compute a four-factor health score for one document.

The score combines traceability (identifier metadata), completeness
(required structure present), freshness (declared timestamps), and the
validation outcome, on a 0-100 scale.`,
	Example: `  docaudit health docs/foundation.md
  docaudit health --json workorders/feature/plan.yaml`,
	Args:    cobra.ExactArgs(1),
	GroupID: GroupInspection,
	RunE:    runHealth,
}

func init() {
	healthCmd.Flags().Bool("json", false, "emit the score as JSON")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")

	eng, _, err := buildEngine(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	score, err := eng.Health(filePath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(score)
	}

	formatHealthScore(score, filePath, cmd.OutOrStdout())
	return nil
}
