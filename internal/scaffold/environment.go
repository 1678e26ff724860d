package scaffold

import (
	"github.com/kreativreason/mason/internal/plan"
	"github.com/kreativreason/mason/internal/template"
)

// BuildEnvironment flattens a fully-defaulted plan payload into the
// substitution environment shared by every template expansion in a run.
// Pure function, no I/O.
func BuildEnvironment(data *plan.Data) *template.Environment {
	colors := data.Design.Colors
	accent1 := colors.Primary
	if len(colors.Accents) > 0 {
		accent1 = colors.Accents[0]
	}
	// A brief with a single accent uses it for both slots.
	accent2 := accent1
	if len(colors.Accents) > 1 {
		accent2 = colors.Accents[1]
	}

	vars := map[string]any{
		"PROJECT_NAME":       data.ProjectName,
		"PROJECT_SLUG":       data.ProjectSlug(),
		"PROJECT_VERSION":    data.Version,
		"ARCHITECTURE_STYLE": string(data.ArchitectureStyle),

		"DESIGN_PRESET":        string(data.Design.Preset),
		"COLOR_PRIMARY":        colors.Primary,
		"COLOR_SECONDARY":      colors.Secondary,
		"COLOR_ACCENT_1":       accent1,
		"COLOR_ACCENT_2":       accent2,
		"COLOR_BACKGROUND":     colors.Background,
		"COLOR_SURFACE":        colors.Surface,
		"COLOR_TEXT_PRIMARY":   colors.TextPrimary,
		"COLOR_TEXT_SECONDARY": colors.TextSecondary,

		"GLASS_ENABLED":         data.Design.Glass.Enabled,
		"GLASS_OPACITY_PERCENT": int(data.Design.Glass.Opacity * 100),
		"GLASS_BLUR":            data.Design.Glass.Blur,

		"FONT_FAMILY":    data.Design.Typography.FontFamily,
		"HEADING_FAMILY": data.Design.Typography.HeadingFamily,
		"BASE_FONT_SIZE": data.Design.Typography.BaseSize,
		"SCALE_RATIO":    data.Design.Typography.ScaleRatio,

		"BREAKPOINT_MOBILE":  data.Design.Breakpoints.Mobile,
		"BREAKPOINT_TABLET":  data.Design.Breakpoints.Tablet,
		"BREAKPOINT_DESKTOP": data.Design.Breakpoints.Desktop,
		"BREAKPOINT_WIDE":    data.Design.Breakpoints.Wide,
		"COMPONENT_STYLE":    data.Design.ComponentStyle,

		"AUTH_PROVIDER":    data.Features.Auth,
		"DATABASE_TYPE":    data.Features.DB,
		"STORAGE_PROVIDER": data.Features.Storage,
		"REALTIME_ENABLED": data.Features.Realtime,
		"CI_ENABLED":       data.Features.CI,
		"DOCS_ENABLED":     data.Features.Docs,
		"FRAMEWORK":        data.Features.Framework,
		"LANGUAGE":         data.Features.Language,

		"DOMAIN_COUNT": len(data.Domains.Domains),
	}

	records := make([]template.DomainRecord, 0, len(data.Domains.Domains))
	for _, d := range data.Domains.Domains {
		records = append(records, template.DomainRecord{
			Name:         d.Name,
			Description:  d.Description,
			RootEntity:   d.RootEntity,
			Entities:     d.Entities,
			Dependencies: d.DependsOn,
			Features:     d.Features,
		})
	}

	return template.NewEnvironment(vars, records)
}
