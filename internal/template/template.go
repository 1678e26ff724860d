// Package template implements the scaffold template-expansion language:
// variable interpolation ({{NAME}}), conditional blocks
// ({{#if NAME}}...{{/if}}), and iteration over the domains collection
// ({{#each domains}}...{{/each}}). Expansion is a pure function of the
// source text and the environment; identical inputs produce byte-identical
// output.
package template

import (
	"fmt"
	"strings"
)

// Expand parses the source text and evaluates it against env.
func Expand(src string, env *Environment) (string, error) {
	nodes, err := parse(src)
	if err != nil {
		return "", fmt.Errorf("template parse: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(src))
	nodes.render(&sb, env, nil)
	return sb.String(), nil
}

// MustExpand is Expand for sources known to be well-formed, such as
// compiled-in template constants.
func MustExpand(src string, env *Environment) string {
	out, err := Expand(src, env)
	if err != nil {
		panic(err)
	}
	return out
}
