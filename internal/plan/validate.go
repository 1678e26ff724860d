package plan

import (
	"errors"
	"fmt"

	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/kreativreason/mason/internal/plan/validation"
)

// Validate checks the plan for structural consistency. It assumes the
// upstream schema validators already ran; this is the gate that must pass
// before any filesystem mutation.
func (p *Plan) Validate() error {
	var errs []error

	if p.ArtifactType != "" && p.ArtifactType != "scaffold_plan" {
		errs = append(errs, fmt.Errorf("%w: artifact_type %q",
			errz.ErrInvalidValue, p.ArtifactType))
	}

	if err := p.Data.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", errz.ErrFailedToValidatePlan, err)
	}
	return nil
}

// Validate checks the plan payload.
func (d *Data) Validate() error {
	var errs []error

	if len(d.ProjectName) < 3 {
		errs = append(errs, fmt.Errorf("%w: project_name must be at least 3 characters",
			errz.ErrMissingRequiredField))
	}

	switch d.ArchitectureStyle {
	case StyleModularMonolith, StyleMicroservices, StyleLayered:
	default:
		errs = append(errs, fmt.Errorf("%w: architecture_style %q",
			errz.ErrInvalidValue, d.ArchitectureStyle))
	}

	if err := d.validateTemplates(); err != nil {
		errs = append(errs, err)
	}

	if err := d.Domains.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("domain mapping: %w", err))
	}
	if err := d.Design.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("design brief: %w", err))
	}
	if err := d.Features.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("feature selections: %w", err))
	}

	return errors.Join(errs...)
}

func (d *Data) validateTemplates() error {
	var errs []error

	seen := make(map[string]bool, len(d.Templates))
	for i, tmpl := range d.Templates {
		if err := validation.ValidateTemplateID(tmpl.ID); err != nil {
			errs = append(errs, fmt.Errorf("%w: template %d: %w", errz.ErrInvalidValue, i, err))
			continue
		}
		if seen[tmpl.ID] {
			errs = append(errs, fmt.Errorf("%w: template %q", errz.ErrDuplicateID, tmpl.ID))
		}
		seen[tmpl.ID] = true

		if tmpl.TargetPath == "" {
			errs = append(errs, fmt.Errorf("%w: template %q has no target_path",
				errz.ErrMissingRequiredField, tmpl.ID))
		}
		if len(tmpl.Files) == 0 {
			errs = append(errs, fmt.Errorf("%w: template %q has no files_to_generate",
				errz.ErrMissingRequiredField, tmpl.ID))
		}
	}

	return errors.Join(errs...)
}
