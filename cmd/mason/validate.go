package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kreativreason/mason/internal/plan"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate a scaffold plan document",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "plan",
			Aliases: []string{"p"},
			Usage:   "Path to the scaffold plan document",
		},
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated plan",
		},
	},
	Suggest: true,
	Action:  validateAction,
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	if err := setupLogger(cmd); err != nil {
		return err
	}

	planPath := cmd.String("plan")
	if planPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"plan file path required (use the --plan flag, or provide the plan file as positional argument)",
			)
		}
		planPath = cmd.Args().Get(0)
	}

	p, err := plan.NewPlan(planPath)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Printf("Scaffold plan %s is valid\n", planPath)

	if cmd.Bool("tree") {
		fmt.Println(p)
		return nil
	}

	fmt.Println(renderPlanSummary(planPath, p))
	return nil
}

// renderPlanSummary creates a formatted summary string for the plan.
func renderPlanSummary(path string, p *plan.Plan) string {
	var summary strings.Builder

	summary.WriteString("\nPlan Summary:\n")
	summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	summary.WriteString(fmt.Sprintf("- Project: %s\n", p.Data.ProjectName))
	summary.WriteString(fmt.Sprintf("- Architecture: %s\n", p.Data.ArchitectureStyle))
	summary.WriteString(fmt.Sprintf("- Domains: %d\n", len(p.Data.Domains.Domains)))
	summary.WriteString(fmt.Sprintf("- Directories: %d\n", len(p.Data.DirectoryStructure)))
	summary.WriteString(fmt.Sprintf("- Template groups: %d\n", len(p.Data.Templates)))
	summary.WriteString("\nUse --tree for a more detailed view of the plan.")

	return summary.String()
}
