package domains

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kreativreason/mason/internal/plan/errz"
	"github.com/kreativreason/mason/internal/plan/validation"
)

// Validate checks the domain mapping for duplicate names, malformed names,
// and cycles in the dependency relation. It runs before any directory is
// created; failure here stops the whole materialization run.
func (m *Mapping) Validate() error {
	var errs []error

	if err := m.validateUniqueNames(); err != nil {
		errs = append(errs, err)
	}

	for _, d := range m.Domains {
		if err := validation.ValidateDomainName(d.Name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", errz.ErrInvalidDomainName, err))
		}
		if len(d.Entities) == 0 {
			errs = append(errs, fmt.Errorf("%w: domain %q has no entities",
				errz.ErrMissingRequiredField, d.Name))
		}
	}

	// Reference and cycle checks only make sense over a well-formed name set.
	if len(errs) == 0 {
		if err := m.validateReferences(); err != nil {
			errs = append(errs, err)
		} else if err := m.validateAcyclic(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// validateUniqueNames fails with a single error naming every repeated value.
func (m *Mapping) validateUniqueNames() error {
	seen := make(map[string]int, len(m.Domains))
	for _, d := range m.Domains {
		seen[d.Name]++
	}

	var dupes []string
	for _, d := range m.Domains {
		if seen[d.Name] > 1 {
			dupes = append(dupes, d.Name)
			seen[d.Name] = 0 // report each repeated value once
		}
	}

	if len(dupes) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", errz.ErrDuplicateDomain, strings.Join(dupes, ", "))
}

// validateReferences checks that every declared dependency names a domain
// in the mapping.
func (m *Mapping) validateReferences() error {
	known := make(map[string]bool, len(m.Domains))
	for _, d := range m.Domains {
		known[d.Name] = true
	}

	var errs []error
	for name, deps := range m.Edges() {
		for _, dep := range deps {
			if !known[dep] {
				errs = append(errs, fmt.Errorf("%w: domain %q depends on undeclared domain %q",
					errz.ErrUnknownDependency, name, dep))
			}
		}
	}
	return errors.Join(errs...)
}

// validateAcyclic runs a depth-first traversal from every unvisited domain,
// tracking the nodes on the current stack. An edge into a node already on
// the stack is a cycle. Every top-level root is visited even after earlier
// roots complete; each root's traversal stops at its first cycle.
func (m *Mapping) validateAcyclic() error {
	edges := m.Edges()

	visited := make(map[string]bool, len(m.Domains))
	onStack := make(map[string]bool, len(m.Domains))

	var errs []error
	var visit func(name string) error
	visit = func(name string) error {
		if onStack[name] {
			return fmt.Errorf("%w: domain %q transitively depends on itself",
				errz.ErrCircularDependency, name)
		}
		if visited[name] {
			return nil
		}

		visited[name] = true
		onStack[name] = true
		defer delete(onStack, name)

		for _, dep := range edges[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, d := range m.Domains {
		if visited[d.Name] {
			continue
		}
		if err := visit(d.Name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
