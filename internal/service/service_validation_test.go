package service

import (
	"context"
	"testing"

	"github.com/okarpov/paramgate/internal/checks"
	"github.com/okarpov/paramgate/internal/engine"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/mock"
	"github.com/okarpov/paramgate/internal/store"
	"github.com/okarpov/paramgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T, ctrl *gomock.Controller, opts ...engine.Option) (*validationService, *mock.MockContractService) {
	t.Helper()
	l := logger.NewLogger("test")
	mockContracts := mock.NewMockContractService(ctrl)

	eng := engine.New(checks.Registry(), l, opts...)
	svc := NewValidationService(eng, mockContracts, l).(*validationService)

	return svc, mockContracts
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidationService_Validate_ValidValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	contract := models.Contract{
		{Name: "greeting", Checks: []models.CheckDecl{
			{Name: models.CheckRequired, Spec: true},
			{Name: models.CheckType, Spec: "string"},
		}},
	}

	report, err := svc.Validate(ctx, contract, models.ReceivedValues{"greeting": "hello"})
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestValidationService_Validate_InvalidValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	contract := models.Contract{
		{Name: "greeting", Checks: []models.CheckDecl{{Name: models.CheckRequired, Spec: true}}},
	}

	report, err := svc.Validate(ctx, contract, models.ReceivedValues{})
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, []string{"is required"}, report["greeting"])
}

func TestValidationService_Validate_DepthExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestValidationSvc(t, ctrl, engine.WithMaxDepth(1))
	ctx := context.Background()

	// two nested "inner" levels against a depth limit of one
	contract := models.Contract{
		{Name: "outer", Checks: []models.CheckDecl{
			{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
				"middle": {
					{Name: models.CheckInner, Spec: map[models.FieldKey][]models.CheckDecl{
						"leaf": {{Name: models.CheckRequired, Spec: true}},
					}},
				},
			}},
		}},
	}
	values := models.ReceivedValues{
		"outer": map[string]any{
			"middle": map[string]any{"leaf": "x"},
		},
	}

	_, err := svc.Validate(ctx, contract, values)
	require.ErrorIs(t, err, engine.ErrDepthExceeded)
}

// ── ValidateStored ───────────────────────────────────────────────────────────

func TestValidationService_ValidateStored_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContracts := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	stored := models.StoredContract{
		Name: "greeting-contract",
		Contract: models.Contract{
			{Name: "greeting", Checks: []models.CheckDecl{{Name: models.CheckRequired, Spec: true}}},
		},
	}

	mockContracts.EXPECT().GetContract(ctx, stored.Name).Return(stored, nil)

	report, err := svc.ValidateStored(ctx, stored.Name, models.ReceivedValues{"greeting": "hi"})
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestValidationService_ValidateStored_ReportsViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContracts := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	stored := models.StoredContract{
		Name: "greeting-contract",
		Contract: models.Contract{
			{Name: "greeting", Checks: []models.CheckDecl{{Name: models.CheckRequired, Spec: true}}},
		},
	}

	mockContracts.EXPECT().GetContract(ctx, stored.Name).Return(stored, nil)

	report, err := svc.ValidateStored(ctx, stored.Name, models.ReceivedValues{})
	require.NoError(t, err)
	assert.Equal(t, []string{"is required"}, report["greeting"])
}

func TestValidationService_ValidateStored_UnknownContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContracts := newTestValidationSvc(t, ctrl)
	ctx := context.Background()

	mockContracts.EXPECT().GetContract(ctx, "missing").Return(models.StoredContract{}, store.ErrContractNotFound)

	_, err := svc.ValidateStored(ctx, "missing", models.ReceivedValues{})
	require.ErrorIs(t, err, store.ErrContractNotFound)
}
