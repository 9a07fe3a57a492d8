package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/srwlli/docaudit/internal/engine"
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Validate every document under a directory",
	Long: `Walk a directory tree and validate every markdown and YAML document.

Documents are validated concurrently. The directory defaults to the
configured docs_dir. Exit code 1 means at least one document failed or the
average score fell below --fail-under.`,
	Example: `  docaudit batch
  docaudit batch ./docs --workers 8
  docaudit batch --fail-under 80 --json`,
	Args:    cobra.MaximumNArgs(1),
	GroupID: GroupValidation,
	RunE:    runBatch,
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 0, "number of concurrent validators (default from config)")
	batchCmd.Flags().Int("fail-under", -1, "fail when the average score is below this threshold")
	batchCmd.Flags().Bool("json", false, "emit the report as JSON")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	eng, cfg, err := buildEngine(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	root := cfg.DocsDir
	if len(args) == 1 {
		root = args[0]
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = cfg.Workers
	}
	failUnder, _ := cmd.Flags().GetInt("fail-under")
	if failUnder < 0 {
		failUnder = cfg.FailUnder
	}

	var spin *spinner.Spinner
	if cfg.ShowProgress && !asJSON && term.IsTerminal(int(os.Stdout.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = fmt.Sprintf(" validating %s", root)
		spin.Start()
	}

	report, err := eng.ValidateAll(cmd.Context(), root, workers)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return NewExitError(ExitConfigError)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		return batchExit(report, failUnder)
	}

	printBatchReport(cmd, report)
	if err := batchExit(report, failUnder); err != nil {
		if report.AverageScore() < failUnder {
			fmt.Fprintf(cmd.ErrOrStderr(), "average score %d is below threshold %d\n", report.AverageScore(), failUnder)
		}
		return err
	}
	return nil
}

func printBatchReport(cmd *cobra.Command, report *engine.BatchReport) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	for _, file := range report.Files {
		if file.Result.Valid {
			fmt.Fprintf(out, "%s %s (score %d, type %s)\n", green("✓"), file.Path, file.Result.Score, file.Result.DocType)
			continue
		}
		fmt.Fprintf(out, "%s %s (score %d, type %s)\n", red("✗"), file.Path, file.Result.Score, file.Result.DocType)
		for _, issue := range file.Result.Errors {
			label := severityColors[issue.Severity].Sprint(string(issue.Severity))
			fmt.Fprintf(out, "    [%s] %s\n", label, issueText(issue))
		}
	}

	fmt.Fprintf(out, "\nRun %s: %d files, %d passed, %d failed, average score %d (%s)\n",
		report.RunID, report.Total, report.Passed, report.Failed, report.AverageScore(), report.Duration.Round(time.Millisecond))
}

func batchExit(report *engine.BatchReport, failUnder int) error {
	if report.Failed > 0 || report.AverageScore() < failUnder {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
