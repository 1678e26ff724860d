package plan

import (
	"testing"

	"github.com/kreativreason/mason/internal/plan/design"
	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/kreativreason/mason/internal/plan/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanJSON = `{
  "artifact_type": "scaffold_plan",
  "status": "complete",
  "validation": "passed",
  "approval_required": true,
  "approvers": ["Cynthia", "Usama"],
  "next_phase": "scaffold_apply",
  "data": {
    "project_name": "Acme",
    "version": "1.0.0",
    "created_at": "2026-08-01T10:00:00Z",
    "architecture_style": "modular-monolith",
    "domain_mapping": {
      "domains": [
        {
          "name": "billing",
          "description": "Billing and invoicing",
          "root_entity": "ENT-001",
          "entities": ["ENT-001", "ENT-002"],
          "depends_on": []
        },
        {
          "name": "orders",
          "description": "Order management",
          "root_entity": "ENT-003",
          "entities": ["ENT-003"],
          "depends_on": ["billing"]
        }
      ],
      "shared_entities": ["ENT-002"]
    },
    "design_brief": {
      "preset": "corporate",
      "colors": {"primary": "#102030", "accents": ["#aabbcc"]},
      "glass": {"enabled": true}
    },
    "feature_selections": {
      "auth": "jwt",
      "db": "postgres",
      "storage": "s3",
      "realtime": false,
      "ci": true,
      "docs": true
    },
    "directory_structure": {
      "src": "source root",
      "src/domains": "domain modules",
      "docs": "project documentation"
    },
    "templates_to_apply": [
      {
        "id": "SCAFFOLD-001",
        "name": "Backend module skeletons",
        "target_path": "/backend",
        "files_to_generate": ["src/app.module.ts", "src/main.ts"]
      }
    ],
    "inject_architecture_rules": true,
    "inject_commit_hooks": true,
    "inject_lint_config": true,
    "inject_design_system": false
  }
}`

func mustLoadPlan(t *testing.T) *Plan {
	t.Helper()
	p, err := NewPlanFromBytes([]byte(validPlanJSON), func(b []byte) loader.Loader {
		return loader.NewJSONLoader(b)
	})
	require.NoError(t, err)
	return p
}

func TestNewPlanFromBytes(t *testing.T) {
	t.Parallel()

	p := mustLoadPlan(t)

	assert.Equal(t, "scaffold_plan", p.ArtifactType)
	assert.Equal(t, "Acme", p.Data.ProjectName)
	assert.Equal(t, StyleModularMonolith, p.Data.ArchitectureStyle)
	assert.Len(t, p.Data.Domains.Domains, 2)
	assert.True(t, p.Data.InjectArchitectureRules)
	assert.False(t, p.Data.InjectDesignSystem)

	// Design defaults must be filled in behind the declared values.
	assert.Equal(t, design.PresetCorporate, p.Data.Design.Preset)
	assert.Equal(t, "#102030", p.Data.Design.Colors.Primary)
	assert.Equal(t, design.DefaultSecondaryColor, p.Data.Design.Colors.Secondary)
	assert.InDelta(t, 0.7, p.Data.Design.Glass.Opacity, 0.0001)
}

func TestPlanValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid plan", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mustLoadPlan(t).Validate())
	})

	t.Run("wrong artifact type", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.ArtifactType = "erd"
		assert.ErrorIs(t, p.Validate(), errz.ErrInvalidValue)
	})

	t.Run("short project name", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.Data.ProjectName = "ab"
		assert.ErrorIs(t, p.Validate(), errz.ErrMissingRequiredField)
	})

	t.Run("unknown architecture style", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.Data.ArchitectureStyle = "hexagonal"
		assert.ErrorIs(t, p.Validate(), errz.ErrInvalidValue)
	})

	t.Run("duplicate template IDs", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.Data.Templates = append(p.Data.Templates, p.Data.Templates[0])
		assert.ErrorIs(t, p.Validate(), errz.ErrDuplicateID)
	})

	t.Run("template without files", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.Data.Templates[0].Files = nil
		assert.ErrorIs(t, p.Validate(), errz.ErrMissingRequiredField)
	})

	t.Run("circular domains surface as validation failure", func(t *testing.T) {
		t.Parallel()
		p := mustLoadPlan(t)
		p.Data.Domains.Domains[0].DependsOn = []string{"orders"}
		err := p.Validate()
		assert.ErrorIs(t, err, errz.ErrFailedToValidatePlan)
		assert.ErrorIs(t, err, errz.ErrCircularDependency)
	})
}

func TestDirectoryPathsStableOrder(t *testing.T) {
	t.Parallel()

	p := mustLoadPlan(t)
	assert.Equal(t, []string{"docs", "src", "src/domains"}, p.Data.DirectoryPaths())
}

func TestProjectSlug(t *testing.T) {
	t.Parallel()

	d := Data{ProjectName: "Acme Call Center"}
	assert.Equal(t, "acme-call-center", d.ProjectSlug())
}

func TestPlanString(t *testing.T) {
	t.Parallel()

	out := mustLoadPlan(t).String()
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "billing")
	assert.Contains(t, out, "SCAFFOLD-001")
}
