package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/srwlli/docaudit/internal/config"
	"github.com/srwlli/docaudit/internal/doctype"
	"github.com/srwlli/docaudit/internal/schema"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the docaudit installation",
	Long: `Run health checks against the local setup.

This command verifies:
  - the configuration file loads and validates
  - every schema resolves and compiles, including record schemas
  - the configured docs directory exists

Each check displays a ✓ if passed or ✗ with an error message if failed.`,
	GroupID: GroupConfiguration,
	RunE:    runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctorCheck struct {
	name string
	run  func() error
}

func runDoctor(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	schemasFlag, _ := cmd.Flags().GetString("schemas-dir")

	var cfg *config.Configuration
	checks := []doctorCheck{
		{
			name: "configuration",
			run: func() error {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
				return nil
			},
		},
		{
			name: "schemas",
			run: func() error {
				schemasDir := schemasFlag
				if schemasDir == "" && cfg != nil {
					schemasDir = cfg.SchemasDir
				}
				reg, err := schema.NewRegistry(schema.NewFSStore(schemasDir))
				if err != nil {
					return err
				}
				for _, dt := range doctype.All() {
					if _, err := reg.ForType(dt); err != nil {
						return fmt.Errorf("type %s: %w", dt, err)
					}
				}
				return nil
			},
		},
		{
			name: "docs directory",
			run: func() error {
				if cfg == nil {
					return fmt.Errorf("skipped: configuration did not load")
				}
				info, err := os.Stat(cfg.DocsDir)
				if err != nil {
					return err
				}
				if !info.IsDir() {
					return fmt.Errorf("%s is not a directory", cfg.DocsDir)
				}
				return nil
			},
		},
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	out := cmd.OutOrStdout()
	failed := 0
	for _, check := range checks {
		if err := check.run(); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", red("✗"), check.name, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", green("✓"), check.name)
	}

	if failed > 0 {
		fmt.Fprintf(out, "\n%d check(s) failed\n", failed)
		return NewExitError(ExitConfigError)
	}
	fmt.Fprintln(out, "\nAll checks passed")
	return nil
}
