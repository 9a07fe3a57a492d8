package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/srwlli/docaudit/internal/health"
	"github.com/srwlli/docaudit/internal/validation"
)

const defaultWidth = 80

// terminalWidth returns the stdout terminal width, or a default when stdout
// is not a TTY.
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return defaultWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return defaultWidth
}

var severityColors = map[validation.Severity]*color.Color{
	validation.SeverityCritical: color.New(color.FgRed, color.Bold),
	validation.SeverityMajor:    color.New(color.FgRed),
	validation.SeverityMinor:    color.New(color.FgYellow),
	validation.SeverityWarning:  color.New(color.FgYellow),
}

// formatValidationResult prints a validation result and returns the exit
// error for invalid documents.
func formatValidationResult(result *validation.Result, filePath string, out, errOut io.Writer) error {
	if result.Valid && !result.HasErrors() && len(result.Warnings) == 0 {
		green := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(out, "%s %s is valid (score %d, type %s)\n", green("✓"), filePath, result.Score, result.DocType)
		return nil
	}

	if result.Valid {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(out, "%s %s is valid with findings (score %d, type %s)\n\n", yellow("✓"), filePath, result.Score, result.DocType)
	} else {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(errOut, "%s %s failed validation (score %d, type %s)\n\n", red("✗"), filePath, result.Score, result.DocType)
	}

	width := terminalWidth()
	for _, issue := range result.Errors {
		label := severityColors[issue.Severity].Sprint(string(issue.Severity))
		line := fmt.Sprintf("  [%s] %s", label, issueText(issue))
		fmt.Fprintln(errOut, truncate(line, width))
	}
	for _, warning := range result.Warnings {
		label := severityColors[validation.SeverityWarning].Sprint("WARNING")
		fmt.Fprintln(errOut, truncate(fmt.Sprintf("  [%s] %s", label, warning), width))
	}

	if !result.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

func issueText(issue *validation.Issue) string {
	if issue.Field != "" {
		return issue.Field + ": " + issue.Message
	}
	return issue.Message
}

// truncate clips a line to the terminal width, accounting roughly for color
// escape sequences by allowing extra slack.
func truncate(line string, width int) string {
	const ansiSlack = 16
	if len(line) <= width+ansiSlack {
		return line
	}
	return line[:width+ansiSlack-3] + "..."
}

// formatHealthScore prints a four-factor health score.
func formatHealthScore(score *health.Score, filePath string, out io.Writer) {
	fmt.Fprintf(out, "Health for %s\n", filePath)
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(out, "  traceability: %d/%d\n", score.Traceability, health.MaxTraceability)
	fmt.Fprintf(out, "  completeness: %d/%d\n", score.Completeness, health.MaxCompleteness)
	fmt.Fprintf(out, "  freshness:    %d/%d\n", score.Freshness, health.MaxFreshness)
	fmt.Fprintf(out, "  validation:   %d/%d\n", score.Validation, health.MaxValidation)
	fmt.Fprintf(out, "  total:        %d/100\n", score.Total)
}
