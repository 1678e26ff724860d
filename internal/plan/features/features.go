// Package features defines the tech-stack selections section of a scaffold plan.
package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kreativreason/mason/internal/plan/errz"
)

// Allowed values per selection, matching the upstream planning schema.
var (
	authProviders = []string{
		"firebase", "auth0", "nextauth", "jwt", "api_key", "clerk", "custom", "none",
	}
	databases = []string{
		"postgres", "mysql", "mongodb", "supabase", "firebase", "redis", "none",
	}
	storageProviders = []string{"s3", "gcs", "firebase", "minio", "local", "none"}
)

// Selections records the tech-stack choices made during planning.
type Selections struct {
	Auth     string `json:"auth"    toml:"auth"`
	DB       string `json:"db"      toml:"db"`
	Storage  string `json:"storage" toml:"storage"`
	Realtime bool   `json:"realtime" toml:"realtime"`
	CI       bool   `json:"ci"       toml:"ci"`
	Docs     bool   `json:"docs"     toml:"docs"`

	// Framework and Language are optional refinements, e.g. "nestjs" and
	// "typescript".
	Framework string `json:"framework,omitempty" toml:"framework"`
	Language  string `json:"language,omitempty"  toml:"language"`
}

// Validate checks each selection against its allowed value set.
func (s *Selections) Validate() error {
	var errs []error

	if err := oneOf("auth", s.Auth, authProviders); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("db", s.DB, databases); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("storage", s.Storage, storageProviders); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q must be one of %s",
		errz.ErrInvalidValue, field, value, strings.Join(allowed, "|"))
}
