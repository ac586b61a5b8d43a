// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/okarpov/paramgate/models"
)

// Messages produced by the structural check itself, as opposed to messages
// produced by the primitive checks it dispatches.
const (
	msgNotAMap        = "must be a map to validate inner fields"
	msgNotAList       = "must be a list to validate inner elements"
	msgInnerMissing   = "inner value is missing"
	msgMalformedInner = "malformed inner specification"
)

// dispatchInner runs the structural "inner" check for field. The list-shaped
// form applies when the field also declares "type: list"; otherwise the spec
// is interpreted as a mapping of inner field names to their check lists.
func (e *Engine) dispatchInner(field models.FieldSpec, spec models.CheckSpec, received models.ReceivedValues, depth int) ([]models.CheckOutcome, error) {
	if typeSpec, ok := field.CheckSpecByName(models.CheckType); ok {
		if name, ok := typeSpec.(string); ok && name == models.TypeList {
			return e.innerList(field, spec, received, depth)
		}
	}

	return e.innerMap(field, spec, received, depth)
}

// innerMap validates the field's own value as a nested map: every inner key
// declared in the spec is validated as an independent field, and all
// resulting outcomes join the parent's flat outcome stream keyed by the
// inner field names.
//
// An inner key absent from the nested value is reported as a failing
// outcome for that key rather than treated as a fatal fault.
func (e *Engine) innerMap(field models.FieldSpec, spec models.CheckSpec, received models.ReceivedValues, depth int) ([]models.CheckOutcome, error) {
	if depth+1 > e.maxDepth {
		return nil, ErrDepthExceeded
	}

	innerSpec, ok := innerMapSpec(spec)
	if !ok {
		return []models.CheckOutcome{models.Fail(field.Name, msgMalformedInner)}, nil
	}

	value, _ := received.Lookup(field.Name)
	innerReceived, ok := asReceivedValues(value)
	if !ok {
		return []models.CheckOutcome{models.Fail(field.Name, msgNotAMap)}, nil
	}

	// map iteration order is random; keep outcome order deterministic
	keys := make([]string, 0, len(innerSpec))
	for key := range innerSpec {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	var outcomes []models.CheckOutcome
	for _, key := range keys {
		innerKey := models.FieldKey(key)
		innerField := models.FieldSpec{Name: innerKey, Checks: innerSpec[innerKey]}

		if _, present := innerReceived.Lookup(innerKey); !present {
			outcomes = append(outcomes, models.Fail(innerKey, msgInnerMissing))
			continue
		}

		for _, decl := range innerField.Checks {
			dispatched, err := e.dispatch(innerField, decl, innerReceived, depth+1)
			if err != nil {
				return nil, err
			}
			outcomes = append(outcomes, dispatched...)
		}
	}

	return outcomes, nil
}

// innerList validates the field's own value as a list: every element is
// validated against a synthesized single-field contract whose field name is
// derived from the parent field name and the element's position, e.g.
// "items_2". The element is addressed under that synthesized name, so
// map-shaped elements can themselves declare nested "inner" checks.
func (e *Engine) innerList(field models.FieldSpec, spec models.CheckSpec, received models.ReceivedValues, depth int) ([]models.CheckOutcome, error) {
	elemSpec, ok := innerListSpec(spec)
	if !ok {
		return []models.CheckOutcome{models.Fail(field.Name, msgMalformedInner)}, nil
	}

	value, _ := received.Lookup(field.Name)
	elements, ok := asList(value)
	if !ok {
		return []models.CheckOutcome{models.Fail(field.Name, msgNotAList)}, nil
	}

	var outcomes []models.CheckOutcome
	for i, element := range elements {
		elemKey := models.FieldKey(fmt.Sprintf("%s_%d", field.Name, i))

		contract := models.Contract{{Name: elemKey, Checks: elemSpec.Checks}}
		elemReceived := models.ReceivedValues{elemKey: element}

		dispatched, err := e.validate(contract, elemReceived, depth+1)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, dispatched...)
	}

	return outcomes, nil
}

// innerMapSpec normalizes the map-shaped "inner" spec. Contracts built in
// Go carry typed declarations; contracts decoded from JSON arrive as
// map[string]any with []any check lists. Both forms are accepted.
func innerMapSpec(spec models.CheckSpec) (map[models.FieldKey][]models.CheckDecl, bool) {
	switch s := spec.(type) {
	case map[models.FieldKey][]models.CheckDecl:
		return s, true
	case map[string][]models.CheckDecl:
		out := make(map[models.FieldKey][]models.CheckDecl, len(s))
		for key, decls := range s {
			out[models.FieldKey(key)] = decls
		}
		return out, true
	case map[string]any:
		out := make(map[models.FieldKey][]models.CheckDecl, len(s))
		for key, raw := range s {
			decls, ok := coerceCheckDecls(raw)
			if !ok {
				return nil, false
			}
			out[models.FieldKey(key)] = decls
		}
		return out, true
	default:
		return nil, false
	}
}

// innerListSpec normalizes the list-shaped "inner" spec: a single
// FieldSpec-like description of the element contract.
func innerListSpec(spec models.CheckSpec) (models.FieldSpec, bool) {
	switch s := spec.(type) {
	case models.FieldSpec:
		return s, true
	case map[string]any:
		name, _ := s["name"].(string)
		decls, ok := coerceCheckDecls(s["checks"])
		if !ok {
			return models.FieldSpec{}, false
		}
		return models.FieldSpec{Name: models.FieldKey(name), Checks: decls}, true
	default:
		return models.FieldSpec{}, false
	}
}

// coerceCheckDecls accepts either a typed declaration list or its decoded
// JSON form ([]any of {"check": name, "spec": ...} objects).
func coerceCheckDecls(raw any) ([]models.CheckDecl, bool) {
	switch decls := raw.(type) {
	case []models.CheckDecl:
		return decls, true
	case []any:
		out := make([]models.CheckDecl, 0, len(decls))
		for _, item := range decls {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			name, ok := obj["check"].(string)
			if !ok || name == "" {
				return nil, false
			}
			out = append(out, models.CheckDecl{Name: name, Spec: obj["spec"]})
		}
		return out, true
	default:
		return nil, false
	}
}

// asReceivedValues views a nested value as a key-addressable value set.
func asReceivedValues(value any) (models.ReceivedValues, bool) {
	switch v := value.(type) {
	case models.ReceivedValues:
		return v, true
	case map[models.FieldKey]any:
		return models.ReceivedValues(v), true
	case map[string]any:
		out := make(models.ReceivedValues, len(v))
		for key, val := range v {
			out[models.FieldKey(key)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// asList views a value as a sequence of elements. Values decoded from JSON
// are always []any; programmatically built value sets may carry concrete
// slice types, which are unpacked via reflection. Byte slices and strings
// are not treated as lists.
func asList(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
