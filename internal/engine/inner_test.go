package engine

import (
	"testing"

	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Map-shaped "inner"
// ---------------------------------------------------------------------------

func TestInner_MapShape_ValidatesInnerFieldsIndependently(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: "type", Spec: "map"},
			{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
				"a": {{Name: "required", Spec: true}},
				"b": {{Name: "fail", Spec: "bad b"}},
			}},
		}},
	}

	received := models.ReceivedValues{
		"map_param": map[string]any{"a": nil, "b": "anything"},
	}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)

	report := Consolidate(outcomes)
	// inner failures are keyed by the inner field names, not the parent
	assert.Equal(t, []string{"is required"}, report["a"])
	assert.Equal(t, []string{"bad b"}, report["b"])
	assert.NotContains(t, report, models.FieldKey("map_param"))
}

func TestInner_MapShape_JSONDecodedSpec(t *testing.T) {
	e := newTestEngine(t)

	// the shape a contract has after passing through encoding/json
	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: map[string]any{
				"a": []any{map[string]any{"check": "required", "spec": true}},
			}},
		}},
	}

	received := models.ReceivedValues{
		"map_param": map[string]any{"a": nil},
	}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.Fail("a", "is required"), outcomes[0])
}

func TestInner_MapShape_MissingInnerKeyIsReported(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
				"declared_but_absent": {{Name: "pass"}},
			}},
		}},
	}

	received := models.ReceivedValues{"map_param": map[string]any{}}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.Fail("declared_but_absent", msgInnerMissing), outcomes[0])
}

func TestInner_MapShape_NonMapValue(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
				"a": {{Name: "pass"}},
			}},
		}},
	}

	outcomes, err := e.Validate(contract, models.ReceivedValues{"map_param": "not a map"})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.Fail("map_param", msgNotAMap), outcomes[0])
}

func TestInner_MapShape_MalformedSpec(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: 42},
		}},
	}

	outcomes, err := e.Validate(contract, models.ReceivedValues{"map_param": map[string]any{}})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.Fail("map_param", msgMalformedInner), outcomes[0])
}

func TestInner_ShadowsPrimitiveOfSameName(t *testing.T) {
	// a primitive registered under "inner" must never be invoked
	registry := map[string]CheckFn{
		"inner": func(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome {
			return models.Fail(field, "primitive inner ran")
		},
	}
	e := New(registry, logger.Nop())

	contract := models.Contract{
		{Name: "map_param", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{}},
		}},
	}

	outcomes, err := e.Validate(contract, models.ReceivedValues{"map_param": map[string]any{}})
	require.NoError(t, err)
	for _, o := range outcomes {
		assert.NotEqual(t, "primitive inner ran", o.Message)
	}
}

// ---------------------------------------------------------------------------
// List-shaped "inner"
// ---------------------------------------------------------------------------

func TestInner_ListShape_ValidatesEveryElement(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "list_param", Checks: []models.CheckDecl{
			{Name: "type", Spec: "list"},
			{Name: models.CheckInner, Spec: models.FieldSpec{
				Name:   "item",
				Checks: []models.CheckDecl{{Name: "required", Spec: true}},
			}},
		}},
	}

	received := models.ReceivedValues{"list_param": []any{1, nil, 3}}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)

	report := Consolidate(outcomes)
	// only the element at index 1 fails, keyed by its synthesized name
	require.Contains(t, report, models.FieldKey("list_param_1"))
	assert.Equal(t, []string{"is required"}, report["list_param_1"])
	assert.NotContains(t, report, models.FieldKey("list_param_0"))
	assert.NotContains(t, report, models.FieldKey("list_param_2"))
}

func TestInner_ListShape_JSONDecodedSpec(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "list_param", Checks: []models.CheckDecl{
			{Name: "type", Spec: "list"},
			{Name: models.CheckInner, Spec: map[string]any{
				"name":   "item",
				"checks": []any{map[string]any{"check": "required", "spec": true}},
			}},
		}},
	}

	received := models.ReceivedValues{"list_param": []any{nil}}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)

	report := Consolidate(outcomes)
	assert.Equal(t, []string{"is required"}, report["list_param_0"])
}

func TestInner_ListShape_NonListValue(t *testing.T) {
	e := newTestEngine(t)

	contract := models.Contract{
		{Name: "list_param", Checks: []models.CheckDecl{
			{Name: "type", Spec: "list"},
			{Name: models.CheckInner, Spec: models.FieldSpec{Name: "item"}},
		}},
	}

	outcomes, err := e.Validate(contract, models.ReceivedValues{"list_param": "scalar"})
	require.NoError(t, err)

	var messages []string
	for _, o := range outcomes {
		if !o.Valid() {
			messages = append(messages, o.Message)
		}
	}
	assert.Contains(t, messages, msgNotAList)
}

func TestInner_ListShape_MapShapedElements(t *testing.T) {
	e := newTestEngine(t)

	// elements are maps that themselves declare nested inner fields
	contract := models.Contract{
		{Name: "events", Checks: []models.CheckDecl{
			{Name: "type", Spec: "list"},
			{Name: models.CheckInner, Spec: models.FieldSpec{
				Name: "event",
				Checks: []models.CheckDecl{
					{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
						"id": {{Name: "required", Spec: true}},
					}},
				},
			}},
		}},
	}

	received := models.ReceivedValues{"events": []any{
		map[string]any{"id": 1},
		map[string]any{"id": nil},
	}}

	outcomes, err := e.Validate(contract, received)
	require.NoError(t, err)

	report := Consolidate(outcomes)
	assert.Equal(t, []string{"is required"}, report["id"])
}
