package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/srwlli/docaudit/internal/config"
	"github.com/srwlli/docaudit/internal/engine"
	"github.com/srwlli/docaudit/internal/schema"
	"github.com/srwlli/docaudit/internal/validation"
)

// buildEngine loads configuration and constructs the validation engine.
// Registry or validator construction failures indicate a broken deployment
// and map to ExitConfigError.
func buildEngine(cmd *cobra.Command, errOut io.Writer) (*engine.Engine, *config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return nil, nil, NewExitError(ExitConfigError)
	}

	schemasDir := cfg.SchemasDir
	if flagDir, _ := cmd.Flags().GetString("schemas-dir"); flagDir != "" {
		schemasDir = flagDir
	}

	reg, err := schema.NewRegistry(schema.NewFSStore(schemasDir))
	if err != nil {
		fmt.Fprintf(errOut, "Error loading schemas: %v\n", err)
		return nil, nil, NewExitError(ExitConfigError)
	}

	eng, err := engine.New(reg, validation.OSReader{})
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return nil, nil, NewExitError(ExitConfigError)
	}
	return eng, cfg, nil
}
