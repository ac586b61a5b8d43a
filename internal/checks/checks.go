// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package checks

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/okarpov/paramgate/models"
)

// Required fails when the field's value is missing or nil and the check's
// spec is truthy. With a falsy spec the field is merely optional and the
// check always passes.
func Required(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	if !models.IsTruthy(spec) {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Fail(field, "is required")
	}

	return models.Pass()
}

// Type verifies the value against the type name given in the spec:
// "string", "integer", "float", "number", "bool", "map" or "list".
// Unknown type names pass silently, mirroring the engine's permissiveness
// towards unknown check names. Nil values pass; "required" owns absence.
func Type(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	want, ok := spec.(string)
	if !ok {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Pass()
	}

	var matches bool
	switch want {
	case "string":
		_, matches = value.(string)
	case "integer":
		matches = isInteger(value)
	case "float", "number":
		_, matches = toFloat(value)
	case "bool", "boolean":
		_, matches = value.(bool)
	case "map":
		matches = reflect.ValueOf(value).Kind() == reflect.Map
	case models.TypeList:
		kind := reflect.ValueOf(value).Kind()
		matches = (kind == reflect.Slice || kind == reflect.Array) && !isByteSlice(value)
	default:
		return models.Pass()
	}

	if !matches {
		return models.Fail(field, fmt.Sprintf("must be of type %s", want))
	}

	return models.Pass()
}

// Format matches a string value against the regular expression given in the
// spec. A spec that is not a compilable pattern fails the field: a broken
// contract declaration should surface, not pass silently as valid input.
func Format(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	pattern, ok := spec.(string)
	if !ok {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Pass()
	}

	text, ok := value.(string)
	if !ok {
		return models.Fail(field, "must be a string to match format")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return models.Fail(field, "has an invalid format pattern")
	}

	if !re.MatchString(text) {
		return models.Fail(field, fmt.Sprintf("must match format %s", pattern))
	}

	return models.Pass()
}

// Range verifies a numeric value against the "min"/"max" bounds of the spec.
// Either bound may be omitted.
func Range(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	min, hasMin := boundFromSpec(spec, "min")
	max, hasMax := boundFromSpec(spec, "max")
	if !hasMin && !hasMax {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Pass()
	}

	number, ok := toFloat(value)
	if !ok {
		return models.Fail(field, "must be a number")
	}

	if hasMin && number < min {
		return models.Fail(field, fmt.Sprintf("must be greater than or equal to %v", min))
	}
	if hasMax && number > max {
		return models.Fail(field, fmt.Sprintf("must be less than or equal to %v", max))
	}

	return models.Pass()
}

// Length verifies the length of a string (in runes), list, or map value
// against the "min"/"max" bounds of the spec.
func Length(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	min, hasMin := boundFromSpec(spec, "min")
	max, hasMax := boundFromSpec(spec, "max")
	if !hasMin && !hasMax {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Pass()
	}

	length, ok := lengthOf(value)
	if !ok {
		return models.Fail(field, "has no measurable length")
	}

	if hasMin && float64(length) < min {
		return models.Fail(field, fmt.Sprintf("length must be at least %v", min))
	}
	if hasMax && float64(length) > max {
		return models.Fail(field, fmt.Sprintf("length must be at most %v", max))
	}

	return models.Pass()
}

// Inclusion verifies that the value is a member of the list given in the
// spec. Numeric candidates are compared by value, so an int 3 matches a
// JSON-decoded 3.0.
func Inclusion(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
	allowed, ok := spec.([]any)
	if !ok {
		return models.Pass()
	}

	value, present := received.Lookup(field)
	if !present || value == nil {
		return models.Pass()
	}

	for _, candidate := range allowed {
		if looseEqual(value, candidate) {
			return models.Pass()
		}
	}

	return models.Fail(field, "is not included in the list")
}

func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return float64(v) == float64(int64(v))
	default:
		return false
	}
}

func isByteSlice(value any) bool {
	_, ok := value.([]byte)
	return ok
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// boundFromSpec reads a numeric bound out of a map-shaped spec. Both typed
// maps and JSON-decoded map[string]any forms are accepted.
func boundFromSpec(spec models.CheckSpec, key string) (float64, bool) {
	m, ok := spec.(map[string]any)
	if !ok {
		return 0, false
	}

	raw, ok := m[key]
	if !ok {
		return 0, false
	}

	return toFloat(raw)
}

func lengthOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func looseEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
