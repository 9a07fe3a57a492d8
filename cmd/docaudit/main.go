// docaudit - documentation validation and health scoring
package main

import (
	"os"

	"github.com/srwlli/docaudit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
