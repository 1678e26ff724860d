// Package plan defines the scaffold plan: the validated, structured
// description of a target project's directory layout, domain grouping,
// design tokens, and tech-stack choices that drives materialization.
package plan

import (
	"strings"
	"time"

	"github.com/kreativreason/mason/internal/plan/design"
	"github.com/kreativreason/mason/internal/plan/domains"
	"github.com/kreativreason/mason/internal/plan/features"
)

// Style is the overall architecture style of the generated project.
type Style string

const (
	StyleModularMonolith Style = "modular-monolith"
	StyleMicroservices   Style = "microservices"
	StyleLayered         Style = "layered"
)

// Plan is the top-level scaffold plan document, including the pipeline
// envelope shared by all artifact types. It is read-only once loaded.
type Plan struct {
	ArtifactType     string   `json:"artifact_type"     toml:"artifact_type"`
	Status           string   `json:"status"            toml:"status"`
	Validation       string   `json:"validation"        toml:"validation"`
	ApprovalRequired bool     `json:"approval_required" toml:"approval_required"`
	Approvers        []string `json:"approvers,omitempty" toml:"approvers"`
	NextPhase        string   `json:"next_phase,omitempty" toml:"next_phase"`
	Data             Data     `json:"data"              toml:"data"`
}

// Data is the plan payload.
type Data struct {
	ProjectName       string    `json:"project_name"       toml:"project_name"`
	Version           string    `json:"version"            toml:"version"`
	CreatedAt         time.Time `json:"created_at"         toml:"created_at"`
	ArchitectureStyle Style     `json:"architecture_style" toml:"architecture_style"`

	Domains  domains.Mapping     `json:"domain_mapping"      toml:"domain_mapping"`
	Design   design.Brief        `json:"design_brief"        toml:"design_brief"`
	Features features.Selections `json:"feature_selections"  toml:"feature_selections"`

	// DirectoryStructure maps relative directory paths to their descriptions.
	DirectoryStructure map[string]string `json:"directory_structure" toml:"directory_structure"`

	// Templates are the ad-hoc template groups declared by the plan.
	Templates []TemplateApplication `json:"templates_to_apply" toml:"templates_to_apply"`

	// Injection toggles for the fixed template groups.
	InjectArchitectureRules bool `json:"inject_architecture_rules" toml:"inject_architecture_rules"`
	InjectCommitHooks       bool `json:"inject_commit_hooks"       toml:"inject_commit_hooks"`
	InjectLintConfig        bool `json:"inject_lint_config"        toml:"inject_lint_config"`
	InjectDesignSystem      bool `json:"inject_design_system"      toml:"inject_design_system"`
}

// TemplateApplication is one ad-hoc template group: a target path and the
// relative files to generate under it.
type TemplateApplication struct {
	ID         string   `json:"id"                    toml:"id"`
	Name       string   `json:"name"                  toml:"name"`
	SourcePath string   `json:"source_path,omitempty" toml:"source_path" env_interpolation:"yes"`
	TargetPath string   `json:"target_path"           toml:"target_path" env_interpolation:"yes"`
	Files      []string `json:"files_to_generate"     toml:"files_to_generate"`
}

// ProjectSlug returns the project name as a filesystem-friendly token.
func (d *Data) ProjectSlug() string {
	return strings.ReplaceAll(strings.ToLower(d.ProjectName), " ", "-")
}
