package main

import (
	"github.com/urfave/cli/v3"

	"github.com/kreativreason/mason/internal/logging"
)

// setupLogger configures the default logger from the root command's flags.
func setupLogger(cmd *cli.Command) error {
	return logging.Setup(
		cmd.String("log-level"),
		cmd.String("log-format"),
		cmd.String("log-output"),
	)
}
