package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/srwlli/docaudit/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for docaudit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docaudit version %s\n", build.Version)
		fmt.Printf("Built from commit: %s\n", build.Commit)
		fmt.Printf("Build date: %s\n", build.BuildDate)
		fmt.Printf("Go version: %s\n", runtime.Version())
	},
}

func init() {
	versionCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(versionCmd)
}
