// Package approval enforces the human approval gate that guards
// materialization. The required approver set is per-run configuration so
// policy can vary by deployment without code changes.
package approval

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrApprovalRequired indicates the supplied approver list does not cover
// the required set.
var ErrApprovalRequired = errors.New("missing required approvers")

// DefaultRequired is the required approver set used when the caller does
// not override it.
var DefaultRequired = []string{"Cynthia", "Usama"}

// Gate holds the approver identities a run must carry before any
// filesystem access is permitted.
type Gate struct {
	Required []string
}

// NewGate returns a gate over the given required approvers, falling back to
// the default set when none are supplied.
func NewGate(required []string) Gate {
	if len(required) == 0 {
		required = DefaultRequired
	}
	return Gate{Required: required}
}

// Check verifies that every required approver appears in the supplied list.
// The error names each missing approver in sorted order.
func (g Gate) Check(approvedBy []string) error {
	provided := make(map[string]bool, len(approvedBy))
	for _, a := range approvedBy {
		provided[strings.TrimSpace(a)] = true
	}

	var missing []string
	for _, r := range g.Required {
		if !provided[r] {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrApprovalRequired, strings.Join(missing, ", "))
}
