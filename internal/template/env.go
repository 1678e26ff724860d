package template

import (
	"fmt"
	"strconv"
	"strings"
)

// DomainsCollection is the only collection name iteration blocks support.
const DomainsCollection = "domains"

// DomainRecord is the per-domain view exposed to iteration blocks.
type DomainRecord struct {
	Name         string
	Description  string
	RootEntity   string
	Entities     []string
	Dependencies []string
	Features     []string
}

// Environment is the flat substitution environment a template expands
// against: uppercase-snake-case variable names mapped to scalar values,
// plus the ordered domains list. It is built once per materialization run
// and never mutated during substitution.
type Environment struct {
	vars    map[string]any
	domains []DomainRecord
}

// NewEnvironment builds a read-only environment from the given variables
// and domain records. The inputs are copied so later caller mutation cannot
// leak into an expansion in progress.
func NewEnvironment(vars map[string]any, domains []DomainRecord) *Environment {
	copied := make(map[string]any, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return &Environment{
		vars:    copied,
		domains: append([]DomainRecord(nil), domains...),
	}
}

// Lookup returns the scalar value bound to name.
func (e *Environment) Lookup(name string) (any, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Domains returns the ordered domain records.
func (e *Environment) Domains() []DomainRecord {
	return e.domains
}

// Var returns the stringified value for name, or "" when unbound.
func (e *Environment) Var(name string) string {
	v, ok := e.vars[name]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Names returns the bound variable names, for diagnostics.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	return names
}

// Truthy reports whether the named value enables a conditional block:
// non-empty string, non-zero number, true boolean, or a present non-empty
// list. Unbound names are falsy.
func (e *Environment) Truthy(name string) bool {
	if name == DomainsCollection {
		return len(e.domains) > 0
	}

	v, ok := e.vars[name]
	if !ok {
		return false
	}
	return truthyValue(v)
}

func truthyValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return v != nil
	}
}

// Stringify renders a scalar environment value as template output text.
// Booleans render as the literal words "true"/"false"; numbers render in
// decimal.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
