package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a single document",
	Long: `Validate one document against its schema.

The document type is detected from the filename, path, and metadata unless
--type is given. Exit code 1 means the document has CRITICAL issues.`,
	Example: `  docaudit validate docs/foundation.md
  docaudit validate --type plan workorders/feature/plan.yaml
  docaudit validate --json docs/readme.md`,
	Args:    cobra.ExactArgs(1),
	GroupID: GroupValidation,
	RunE:    runValidate,
}

func init() {
	validateCmd.Flags().StringP("type", "t", "", "document type to validate as (skips detection)")
	validateCmd.Flags().Bool("json", false, "emit the result as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")
	typeFlag, _ := cmd.Flags().GetString("type")

	eng, _, err := buildEngine(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var result *validation.Result
	if typeFlag != "" {
		dt, err := doctype.Parse(typeFlag)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
		content, readErr := os.ReadFile(filePath)
		if readErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: cannot read %s: %v\n", filePath, readErr)
			return NewExitError(ExitInvalidArguments)
		}
		result, err = eng.ValidateContent(content, dt)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return NewExitError(ExitConfigError)
		}
	} else {
		result = eng.ValidateFile(filePath)
	}

	if asJSON {
		return printResultJSON(cmd, filePath, result)
	}
	return formatValidationResult(result, filePath, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

type resultEnvelope struct {
	File     string              `json:"file"`
	Type     string              `json:"type"`
	Valid    bool                `json:"valid"`
	Score    int                 `json:"score"`
	Errors   []*validation.Issue `json:"errors"`
	Warnings []string            `json:"warnings"`
}

func printResultJSON(cmd *cobra.Command, filePath string, result *validation.Result) error {
	env := resultEnvelope{
		File:     filePath,
		Type:     string(result.DocType),
		Valid:    result.Valid,
		Score:    result.Score,
		Errors:   result.Errors,
		Warnings: result.Warnings,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
