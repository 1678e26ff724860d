package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "mason",
		Version: Version,
		Usage:   "Materialize approved scaffold plans into project skeletons",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text or json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "Log destination (stderr, stdout, or a file path)",
				Value: "stderr",
			},
		},
		Commands: []*cli.Command{
			applyCmd,
			validateCmd,
			versionCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
