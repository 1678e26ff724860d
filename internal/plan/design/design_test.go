package design

import (
	"testing"

	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsOnEmptyBrief(t *testing.T) {
	t.Parallel()

	var b Brief
	b.ApplyDefaults()

	assert.Equal(t, PresetNeutral, b.Preset)
	assert.Equal(t, DefaultPrimaryColor, b.Colors.Primary)
	assert.Equal(t, []string{DefaultAccentColor}, b.Colors.Accents)
	assert.InDelta(t, 0.7, b.Glass.Opacity, 0.0001)
	assert.Equal(t, DefaultGlassBlur, b.Glass.Blur)
	assert.Equal(t, DefaultFontFamily, b.Typography.FontFamily)
	assert.Equal(t, DefaultBaseFontSize, b.Typography.BaseSize)
	assert.Equal(t, DefaultBreakpointMobile, b.Breakpoints.Mobile)
	assert.Equal(t, DefaultComponentStyle, b.ComponentStyle)

	assert.NoError(t, b.Validate())
}

func TestApplyDefaultsPreservesSetValues(t *testing.T) {
	t.Parallel()

	b := Brief{
		Preset: PresetCreative,
		Colors: Colors{Primary: "#ff0000", Accents: []string{"#00ff00", "#0000ff"}},
		Glass:  Glass{Enabled: true, Opacity: 0.4},
	}
	b.ApplyDefaults()

	assert.Equal(t, PresetCreative, b.Preset)
	assert.Equal(t, "#ff0000", b.Colors.Primary)
	assert.Equal(t, []string{"#00ff00", "#0000ff"}, b.Colors.Accents)
	assert.InDelta(t, 0.4, b.Glass.Opacity, 0.0001)
	assert.Equal(t, DefaultSecondaryColor, b.Colors.Secondary)
}

func TestBriefValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Brief)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Brief) {}},
		{
			name:    "unknown preset",
			mutate:  func(b *Brief) { b.Preset = "vaporwave" },
			wantErr: true,
		},
		{
			name:    "opacity above one",
			mutate:  func(b *Brief) { b.Glass.Opacity = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative base size",
			mutate:  func(b *Brief) { b.Typography.BaseSize = -4 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var b Brief
			b.ApplyDefaults()
			tt.mutate(&b)

			err := b.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errz.ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
