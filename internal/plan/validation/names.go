// Package validation provides lexical validation utilities for plan domain types.
package validation

import (
	"fmt"
	"regexp"
)

// Domain names are lowercase alphanumeric segments joined by single hyphens,
// e.g. "billing" or "user-accounts".
var domainNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Template group IDs follow the SCAFFOLD-### convention from the planning stage.
var templateIDPattern = regexp.MustCompile(`^SCAFFOLD-\d{3}$`)

const maxNameLength = 64

// ValidateDomainName validates that a domain name follows the required format.
func ValidateDomainName(name string) error {
	if name == "" {
		return fmt.Errorf("domain name cannot be empty")
	}

	if len(name) > maxNameLength {
		return fmt.Errorf(
			"domain name must be at most %d characters long, got %d",
			maxNameLength,
			len(name),
		)
	}

	if !domainNamePattern.MatchString(name) {
		return fmt.Errorf(
			"domain name %q must be lowercase alphanumeric segments joined by single hyphens",
			name,
		)
	}

	return nil
}

// ValidateTemplateID validates a template application identifier.
func ValidateTemplateID(id string) error {
	if id == "" {
		return fmt.Errorf("template ID cannot be empty")
	}
	if !templateIDPattern.MatchString(id) {
		return fmt.Errorf("template ID %q must match SCAFFOLD-###", id)
	}
	return nil
}
