// Package design defines the design brief section of a scaffold plan: the
// visual token set (colors, glass effect, typography, breakpoints) injected
// into generated templates.
package design

import (
	"errors"
	"fmt"

	"github.com/kreativreason/mason/internal/plan/errz"
)

// Preset names a predefined token set.
type Preset string

const (
	PresetCreative  Preset = "creative"
	PresetCorporate Preset = "corporate"
	PresetNeutral   Preset = "neutral"
	PresetCustom    Preset = "custom"
)

// Default token values applied to any field the plan leaves unset.
const (
	DefaultPreset         = PresetNeutral
	DefaultPrimaryColor   = "#1f2937"
	DefaultSecondaryColor = "#4b5563"
	DefaultBackground     = "#ffffff"
	DefaultSurface        = "#f9fafb"
	DefaultTextPrimary    = "#111827"
	DefaultTextSecondary  = "#6b7280"
	DefaultAccentColor    = "#3b82f6"
	DefaultGlassOpacity   = 0.7
	DefaultGlassBlur      = 12
	DefaultFontFamily     = "Inter"
	DefaultHeadingFamily  = "Inter"
	DefaultBaseFontSize   = 16
	DefaultScaleRatio     = 1.25
	DefaultComponentStyle = "rounded"
)

// Default breakpoint widths in pixels.
const (
	DefaultBreakpointMobile  = 640
	DefaultBreakpointTablet  = 768
	DefaultBreakpointDesktop = 1024
	DefaultBreakpointWide    = 1280
)

// Brief is the design token section of a scaffold plan. All fields are
// optional in the serialized form; ApplyDefaults fills the gaps before the
// template environment is built.
type Brief struct {
	Preset         Preset      `json:"preset,omitempty"          toml:"preset"`
	Colors         Colors      `json:"colors,omitempty"          toml:"colors"`
	Glass          Glass       `json:"glass,omitempty"           toml:"glass"`
	Typography     Typography  `json:"typography,omitempty"      toml:"typography"`
	Breakpoints    Breakpoints `json:"breakpoints,omitempty"     toml:"breakpoints"`
	ComponentStyle string      `json:"component_style,omitempty" toml:"component_style"`
}

// Colors holds the concrete color tokens.
type Colors struct {
	Primary       string   `json:"primary,omitempty"        toml:"primary"`
	Secondary     string   `json:"secondary,omitempty"      toml:"secondary"`
	Accents       []string `json:"accents,omitempty"        toml:"accents"`
	Background    string   `json:"background,omitempty"     toml:"background"`
	Surface       string   `json:"surface,omitempty"        toml:"surface"`
	TextPrimary   string   `json:"text_primary,omitempty"   toml:"text_primary"`
	TextSecondary string   `json:"text_secondary,omitempty" toml:"text_secondary"`
}

// Glass holds the glassmorphism effect tokens.
type Glass struct {
	Enabled bool `json:"enabled" toml:"enabled"`
	// Opacity is a fraction in [0, 1]; zero means unset and defaults to 0.7.
	Opacity float64 `json:"opacity,omitempty" toml:"opacity"`
	// Blur is the backdrop blur radius in pixels.
	Blur int `json:"blur,omitempty" toml:"blur"`
}

// Typography holds the font tokens.
type Typography struct {
	FontFamily    string  `json:"font_family,omitempty"    toml:"font_family"`
	HeadingFamily string  `json:"heading_family,omitempty" toml:"heading_family"`
	BaseSize      int     `json:"base_size,omitempty"      toml:"base_size"`
	ScaleRatio    float64 `json:"scale_ratio,omitempty"    toml:"scale_ratio"`
}

// Breakpoints holds the responsive breakpoint tokens in pixels.
type Breakpoints struct {
	Mobile  int `json:"mobile,omitempty"  toml:"mobile"`
	Tablet  int `json:"tablet,omitempty"  toml:"tablet"`
	Desktop int `json:"desktop,omitempty" toml:"desktop"`
	Wide    int `json:"wide,omitempty"    toml:"wide"`
}

// ApplyDefaults fills every unset field with its documented default, so the
// brief is always fully populated before environment building.
func (b *Brief) ApplyDefaults() {
	if b.Preset == "" {
		b.Preset = DefaultPreset
	}
	if b.Colors.Primary == "" {
		b.Colors.Primary = DefaultPrimaryColor
	}
	if b.Colors.Secondary == "" {
		b.Colors.Secondary = DefaultSecondaryColor
	}
	if len(b.Colors.Accents) == 0 {
		b.Colors.Accents = []string{DefaultAccentColor}
	}
	if b.Colors.Background == "" {
		b.Colors.Background = DefaultBackground
	}
	if b.Colors.Surface == "" {
		b.Colors.Surface = DefaultSurface
	}
	if b.Colors.TextPrimary == "" {
		b.Colors.TextPrimary = DefaultTextPrimary
	}
	if b.Colors.TextSecondary == "" {
		b.Colors.TextSecondary = DefaultTextSecondary
	}
	if b.Glass.Opacity == 0 {
		b.Glass.Opacity = DefaultGlassOpacity
	}
	if b.Glass.Blur == 0 {
		b.Glass.Blur = DefaultGlassBlur
	}
	if b.Typography.FontFamily == "" {
		b.Typography.FontFamily = DefaultFontFamily
	}
	if b.Typography.HeadingFamily == "" {
		b.Typography.HeadingFamily = DefaultHeadingFamily
	}
	if b.Typography.BaseSize == 0 {
		b.Typography.BaseSize = DefaultBaseFontSize
	}
	if b.Typography.ScaleRatio == 0 {
		b.Typography.ScaleRatio = DefaultScaleRatio
	}
	if b.Breakpoints.Mobile == 0 {
		b.Breakpoints.Mobile = DefaultBreakpointMobile
	}
	if b.Breakpoints.Tablet == 0 {
		b.Breakpoints.Tablet = DefaultBreakpointTablet
	}
	if b.Breakpoints.Desktop == 0 {
		b.Breakpoints.Desktop = DefaultBreakpointDesktop
	}
	if b.Breakpoints.Wide == 0 {
		b.Breakpoints.Wide = DefaultBreakpointWide
	}
	if b.ComponentStyle == "" {
		b.ComponentStyle = DefaultComponentStyle
	}
}

// Validate checks the brief after defaults have been applied.
func (b *Brief) Validate() error {
	var errs []error

	switch b.Preset {
	case PresetCreative, PresetCorporate, PresetNeutral, PresetCustom:
	default:
		errs = append(errs, fmt.Errorf("%w: design preset %q", errz.ErrInvalidValue, b.Preset))
	}

	if b.Glass.Opacity < 0 || b.Glass.Opacity > 1 {
		errs = append(errs, fmt.Errorf("%w: glass opacity %v must be within [0, 1]",
			errz.ErrInvalidValue, b.Glass.Opacity))
	}

	if b.Typography.BaseSize < 0 {
		errs = append(errs, fmt.Errorf("%w: base font size %d",
			errz.ErrInvalidValue, b.Typography.BaseSize))
	}

	return errors.Join(errs...)
}
