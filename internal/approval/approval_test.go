package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		required    []string
		approvedBy  []string
		wantMissing string
	}{
		{
			name:       "full approval",
			required:   []string{"Cynthia", "Usama"},
			approvedBy: []string{"Cynthia", "Usama"},
		},
		{
			name:       "extra approvers are fine",
			required:   []string{"Cynthia", "Usama"},
			approvedBy: []string{"Hermann", "Usama", "Cynthia"},
		},
		{
			name:        "one missing",
			required:    []string{"Cynthia", "Usama"},
			approvedBy:  []string{"Cynthia"},
			wantMissing: "Usama",
		},
		{
			name:        "all missing",
			required:    []string{"Cynthia", "Usama"},
			approvedBy:  nil,
			wantMissing: "Cynthia, Usama",
		},
		{
			name:       "whitespace trimmed",
			required:   []string{"Cynthia", "Usama"},
			approvedBy: []string{" Cynthia ", "Usama"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewGate(tt.required).Check(tt.approvedBy)
			if tt.wantMissing == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrApprovalRequired)
			assert.Contains(t, err.Error(), tt.wantMissing)
		})
	}
}

func TestNewGateDefaults(t *testing.T) {
	t.Parallel()

	g := NewGate(nil)
	assert.Equal(t, DefaultRequired, g.Required)

	g = NewGate([]string{"Hermann"})
	assert.Equal(t, []string{"Hermann"}, g.Required)
}
