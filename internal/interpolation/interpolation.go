// Package interpolation expands ${VAR_NAME} and ${VAR_NAME:default}
// environment references in path-like plan fields and CLI path arguments,
// so one plan document can target different machines without edits.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax. The colon is
// captured explicitly so an empty default can be told apart from no
// default at all.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars expands environment variable references in input. A
// reference without a default whose variable is unset is an error; with a
// default (even an empty one, as in ${VAR:}) the default is used instead.
func ExpandEnvVars(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var missingVars []error
	result := envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] == ":"
		defaultValue := submatches[3]

		if value, exists := os.LookupEnv(varName); exists {
			return value
		}
		if hasDefault {
			return defaultValue
		}

		missingVars = append(
			missingVars,
			fmt.Errorf("environment variable not defined: %s", varName),
		)
		return match
	})

	return result, errors.Join(missingVars...)
}

// InterpolateStruct expands environment references in fields tagged with
// `env_interpolation:"yes"`, modifying the struct in place. String fields,
// string slices, and string-to-string maps are supported; other tagged
// kinds are skipped.
func InterpolateStruct(v any) error {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct or pointer to struct, got %T", v)
	}

	typ := val.Type()
	var errs []error

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}
		if strings.ToLower(fieldType.Tag.Get("env_interpolation")) != "yes" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			original := field.String()
			if original == "" {
				continue
			}
			expanded, err := ExpandEnvVars(original)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", fieldType.Name, err))
				continue
			}
			field.SetString(expanded)

		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String || field.IsNil() {
				continue
			}
			for j := range field.Len() {
				elem := field.Index(j)
				expanded, err := ExpandEnvVars(elem.String())
				if err != nil {
					errs = append(errs, fmt.Errorf("field %s[%d]: %w", fieldType.Name, j, err))
					continue
				}
				elem.SetString(expanded)
			}

		case reflect.Map:
			if field.Type().Key().Kind() != reflect.String ||
				field.Type().Elem().Kind() != reflect.String ||
				field.IsNil() {
				continue
			}
			for _, key := range field.MapKeys() {
				expanded, err := ExpandEnvVars(field.MapIndex(key).String())
				if err != nil {
					errs = append(errs, fmt.Errorf("field %s[%s]: %w",
						fieldType.Name, key.String(), err))
					continue
				}
				field.SetMapIndex(key, reflect.ValueOf(expanded))
			}
		}
	}

	return errors.Join(errs...)
}
