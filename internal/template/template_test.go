package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv() *Environment {
	return NewEnvironment(map[string]any{
		"PROJECT_NAME":          "Acme",
		"PROJECT_VERSION":       "1.0.0",
		"CI_ENABLED":            true,
		"REALTIME_ENABLED":      false,
		"GLASS_OPACITY_PERCENT": 70,
		"SCALE_RATIO":           1.25,
		"EMPTY_STRING":          "",
	}, []DomainRecord{
		{
			Name:        "billing",
			Description: "Billing and invoicing",
			RootEntity:  "Invoice",
			Entities:    []string{"Invoice", "Payment"},
		},
		{
			Name:         "orders",
			Description:  "Order management",
			RootEntity:   "Order",
			Entities:     []string{"Order"},
			Dependencies: []string{"billing"},
			Features:     []string{"FR-001", "FR-002"},
		},
		{
			Name:       "catalog",
			RootEntity: "Product",
			Entities:   []string{"Product", "Category"},
		},
	})
}

func TestExpandVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "plain text untouched", src: "hello world", want: "hello world"},
		{name: "single variable", src: "project: {{PROJECT_NAME}}", want: "project: Acme"},
		{
			name: "multiple variables",
			src:  "{{PROJECT_NAME}} v{{PROJECT_VERSION}}",
			want: "Acme v1.0.0",
		},
		{name: "true boolean renders literally", src: "ci={{CI_ENABLED}}", want: "ci=true"},
		{name: "false boolean renders literally", src: "rt={{REALTIME_ENABLED}}", want: "rt=false"},
		{name: "integer renders in decimal", src: "{{GLASS_OPACITY_PERCENT}}%", want: "70%"},
		{name: "float renders in decimal", src: "ratio {{SCALE_RATIO}}", want: "ratio 1.25"},
		{
			name: "unknown name left verbatim",
			src:  "token {{NOT_DEFINED}} here",
			want: "token {{NOT_DEFINED}} here",
		},
		{name: "lowercase marker is plain text", src: "{{not_a_var}}", want: "{{not_a_var}}"},
		{name: "lone braces are plain text", src: "a {{ b }} c", want: "a {{ b }} c"},
		{name: "empty source", src: "", want: ""},
	}

	env := testEnv()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Expand(tt.src, env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandConditionals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "truthy bool keeps body", src: "{{#if CI_ENABLED}}ci on{{/if}}", want: "ci on"},
		{name: "falsy bool removes body", src: "{{#if REALTIME_ENABLED}}rt on{{/if}}", want: ""},
		{name: "unbound name is falsy", src: "{{#if NOPE}}x{{/if}}", want: ""},
		{name: "empty string is falsy", src: "{{#if EMPTY_STRING}}x{{/if}}", want: ""},
		{name: "non-empty string is truthy", src: "{{#if PROJECT_NAME}}x{{/if}}", want: "x"},
		{name: "non-zero number is truthy", src: "{{#if GLASS_OPACITY_PERCENT}}x{{/if}}", want: "x"},
		{name: "domains list is truthy", src: "{{#if domains}}have domains{{/if}}", want: "have domains"},
		{
			name: "nested truthy in truthy",
			src:  "{{#if CI_ENABLED}}a{{#if PROJECT_NAME}}b{{/if}}c{{/if}}",
			want: "abc",
		},
		{
			name: "falsy outer wins over truthy inner",
			src:  "{{#if REALTIME_ENABLED}}a{{#if CI_ENABLED}}b{{/if}}c{{/if}}",
			want: "",
		},
		{
			name: "deep nesting fully resolves",
			src:  "{{#if CI_ENABLED}}1{{#if CI_ENABLED}}2{{#if CI_ENABLED}}3{{/if}}{{/if}}{{/if}}",
			want: "123",
		},
		{
			name: "variables inside body expand",
			src:  "{{#if CI_ENABLED}}project={{PROJECT_NAME}}{{/if}}",
			want: "project=Acme",
		},
	}

	env := testEnv()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Expand(tt.src, env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "{{#if")
			assert.NotContains(t, got, "{{/if}}")
		})
	}
}

func TestExpandEach(t *testing.T) {
	t.Parallel()

	env := testEnv()

	t.Run("three domains in input order", func(t *testing.T) {
		t.Parallel()
		got, err := Expand("{{#each domains}}[{{DOMAIN_NAME}}]{{/each}}", env)
		require.NoError(t, err)
		assert.Equal(t, "[billing][orders][catalog]", got)
	})

	t.Run("empty domains yields empty output", func(t *testing.T) {
		t.Parallel()
		empty := NewEnvironment(nil, nil)
		got, err := Expand("{{#each domains}}[{{DOMAIN_NAME}}]{{/each}}", empty)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("per-item placeholders", func(t *testing.T) {
		t.Parallel()
		src := "{{#each domains}}{{DOMAIN_NAME}}: root={{DOMAIN_ROOT_ENTITY}} " +
			"entities={{DOMAIN_ENTITIES}} deps={{DOMAIN_DEPENDENCIES}} features={{DOMAIN_FEATURES}}\n{{/each}}"
		got, err := Expand(src, env)
		require.NoError(t, err)
		assert.Equal(t,
			"billing: root=Invoice entities=Invoice, Payment deps=None features=\n"+
				"orders: root=Order entities=Order deps=billing features=FR-001, FR-002\n"+
				"catalog: root=Product entities=Product, Category deps=None features=\n",
			got)
	})

	t.Run("environment variables visible inside each", func(t *testing.T) {
		t.Parallel()
		got, err := Expand("{{#each domains}}{{PROJECT_NAME}}/{{DOMAIN_NAME}};{{/each}}", env)
		require.NoError(t, err)
		assert.Equal(t, "Acme/billing;Acme/orders;Acme/catalog;", got)
	})

	t.Run("conditional inside each", func(t *testing.T) {
		t.Parallel()
		got, err := Expand(
			"{{#each domains}}{{#if DOMAIN_FEATURES}}{{DOMAIN_NAME}} has features;{{/if}}{{/each}}", env)
		require.NoError(t, err)
		assert.Equal(t, "orders has features;", got)
	})
}

func TestExpandParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "unclosed if", src: "{{#if CI_ENABLED}}body", wantErr: ErrUnclosedBlock},
		{name: "unclosed each", src: "{{#each domains}}body", wantErr: ErrUnclosedBlock},
		{name: "stray close if", src: "body{{/if}}", wantErr: ErrUnexpectedCloseTag},
		{name: "stray close each", src: "{{/each}}", wantErr: ErrUnexpectedCloseTag},
		{name: "mismatched close", src: "{{#if CI_ENABLED}}x{{/each}}", wantErr: ErrUnclosedBlock},
		{name: "unsupported collection", src: "{{#each entities}}x{{/each}}", wantErr: ErrUnknownCollection},
	}

	env := testEnv()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Expand(tt.src, env)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandDeterministic(t *testing.T) {
	t.Parallel()

	env := testEnv()
	src := "{{PROJECT_NAME}} {{#if CI_ENABLED}}{{#each domains}}{{DOMAIN_NAME}},{{/each}}{{/if}}"

	first, err := Expand(src, env)
	require.NoError(t, err)
	for range 10 {
		again, err := Expand(src, env)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEnvironmentIsolatedFromCallerMutation(t *testing.T) {
	t.Parallel()

	vars := map[string]any{"PROJECT_NAME": "Acme"}
	env := NewEnvironment(vars, nil)
	vars["PROJECT_NAME"] = "Mutated"

	got, err := Expand("{{PROJECT_NAME}}", env)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
}

func TestStringify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", Stringify("text"))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "42", Stringify(int64(42)))
	assert.Equal(t, "0.5", Stringify(0.5))
	assert.Equal(t, "a, b", Stringify([]string{"a", "b"}))
}
