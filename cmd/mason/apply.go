package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/urfave/cli/v3"

	"github.com/kreativreason/mason/internal/approval"
	"github.com/kreativreason/mason/internal/artifact"
	"github.com/kreativreason/mason/internal/interpolation"
	"github.com/kreativreason/mason/internal/plan"
	"github.com/kreativreason/mason/internal/report"
	"github.com/kreativreason/mason/internal/scaffold"
	"github.com/kreativreason/mason/internal/scaffold/transaction"
)

var applyCmd = &cli.Command{
	Name:  "apply",
	Usage: "Apply an approved scaffold plan to a target directory",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "plan",
			Usage:    "Path to the scaffold plan document",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "prd",
			Usage:    "Path to the PRD document",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "erd",
			Usage:    "Path to the ERD document",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "approved-by",
			Usage: "Approver name (can be repeated)",
		},
		&cli.StringSliceFlag{
			Name:  "require-approver",
			Usage: "Required approver identity (can be repeated, overrides the default set)",
		},
		&cli.StringFlag{
			Name:     "output",
			Usage:    "Path to write the scaffold_applied result document",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "project-dir",
			Usage: "Target directory for the generated project (default: ../generated-projects/<project-slug>)",
		},
		&cli.StringFlag{
			Name:  "templates",
			Usage: "Path to the template source tree",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Validate and report without creating files",
		},
	},
	Action: applyAction,
}

func applyAction(ctx context.Context, cmd *cli.Command) error {
	if err := setupLogger(cmd); err != nil {
		return emitRunError(err)
	}
	logger := slog.Default()

	mode := transaction.ModeApply
	if cmd.Bool("dry-run") {
		mode = transaction.ModeDryRun
	}

	planPath := cmd.String("plan")
	p, err := plan.NewPlan(planPath)
	if err != nil {
		return emitRunError(err)
	}

	tx, err := transaction.New(planPath, mode, &p.Data, logger.Handler())
	if err != nil {
		return emitRunError(err)
	}

	if err := tx.BeginValidation(); err != nil {
		return emitRunError(err)
	}

	err = validateRunInputs(p,
		cmd.String("prd"), cmd.String("erd"),
		cmd.StringSlice("require-approver"), cmd.StringSlice("approved-by"))
	if err != nil {
		_ = tx.MarkInvalid(err)
		return emitRunError(err)
	}

	if err := tx.MarkValidated(); err != nil {
		return emitRunError(err)
	}
	if err := tx.BeginExecution(); err != nil {
		return emitRunError(err)
	}

	projectRoot, err := interpolation.ExpandEnvVars(cmd.String("project-dir"))
	if err != nil {
		_ = tx.MarkFailed(err)
		return emitRunError(err)
	}
	if projectRoot == "" {
		projectRoot = filepath.Join("..", "generated-projects", p.Data.ProjectSlug())
	}

	var templates billy.Filesystem
	if dir := cmd.String("templates"); dir != "" {
		expanded, err := interpolation.ExpandEnvVars(dir)
		if err != nil {
			_ = tx.MarkFailed(err)
			return emitRunError(err)
		}
		templates = osfs.New(expanded)
	}

	m := scaffold.NewMaterializer(osfs.New(projectRoot), templates, tx.Logger())
	env := scaffold.BuildEnvironment(&p.Data)

	res, err := m.Apply(&p.Data, env, cmd.Bool("dry-run"))
	if err != nil {
		_ = tx.MarkFailed(err)
		return emitRunError(err)
	}

	if err := tx.MarkSucceeded(); err != nil {
		return emitRunError(err)
	}

	applied := report.NewApplied(&p.Data, projectRoot, tx.ID.String(), string(mode), res)
	if err := applied.Write(cmd.String("output")); err != nil {
		_ = tx.MarkFailed(err)
		return emitRunError(err)
	}
	if err := applied.Emit(os.Stdout); err != nil {
		return emitRunError(err)
	}

	return tx.MarkCompleted()
}

// validateRunInputs runs the gates that precede any target filesystem
// access: plan validation, cross-document name consistency, then the
// approval gate.
func validateRunInputs(p *plan.Plan, prdPath, erdPath string, required, approvedBy []string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	prd, err := artifact.Load(prdPath)
	if err != nil {
		return fmt.Errorf("load PRD: %w", err)
	}
	erd, err := artifact.Load(erdPath)
	if err != nil {
		return fmt.Errorf("load ERD: %w", err)
	}
	if err := artifact.CheckProjectNames(p.Data.ProjectName, prd, erd); err != nil {
		return err
	}

	gate := approval.NewGate(required)
	return gate.Check(approvedBy)
}

// emitRunError prints the structured error envelope to stdout and exits
// non-zero. The envelope is the run's only output on failure.
func emitRunError(err error) error {
	if emitErr := report.FromError(err).Emit(os.Stdout); emitErr != nil {
		return cli.Exit(emitErr, 1)
	}
	return cli.Exit("", 1)
}
