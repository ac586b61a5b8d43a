package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okarpov/paramgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(HTTPClientConfig{BaseURL: srv.URL})
}

func TestRegisterContract_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/contracts/", r.URL.Path)

		var contract models.StoredContract
		require.NoError(t, json.NewDecoder(r.Body).Decode(&contract))
		contract.ContractID = "id-1"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(contract)
	})

	saved, err := client.RegisterContract(context.Background(), models.StoredContract{Name: "greeting-contract"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", saved.ContractID)
	assert.Equal(t, "greeting-contract", saved.Name)
}

func TestRegisterContract_NameTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contract name already exists", http.StatusConflict)
	})

	_, err := client.RegisterContract(context.Background(), models.StoredContract{Name: "taken"})
	require.ErrorIs(t, err, ErrContractAlreadyExists)
}

func TestGetContract_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contracts/greeting-contract", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.StoredContract{Name: "greeting-contract"})
	})

	contract, err := client.GetContract(context.Background(), "greeting-contract")
	require.NoError(t, err)
	assert.Equal(t, "greeting-contract", contract.Name)
}

func TestGetContract_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contract was not found", http.StatusNotFound)
	})

	_, err := client.GetContract(context.Background(), "missing")
	require.ErrorIs(t, err, ErrContractNotFound)
}

func TestListContracts_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.StoredContract{
			{Name: "a-contract"},
			{Name: "b-contract"},
		})
	})

	contracts, err := client.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, "a-contract", contracts[0].Name)
}

func TestDeleteContract_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteContract(context.Background(), "greeting-contract"))
}

func TestValidate_ValidVerdict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/validate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.ValidateResponse{Valid: true})
	})

	result, err := client.Validate(context.Background(), models.Contract{}, models.ReceivedValues{})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidate_FailingVerdictIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(models.ValidateResponse{
			Valid:  false,
			Errors: models.ValidationReport{"greeting": {"is required"}},
		})
	})

	result, err := client.Validate(context.Background(), models.Contract{}, models.ReceivedValues{})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"is required"}, result.Errors["greeting"])
}

func TestValidate_BadRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contract nesting depth exceeded", http.StatusBadRequest)
	})

	_, err := client.Validate(context.Background(), models.Contract{}, models.ReceivedValues{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "depth exceeded")
}

func TestValidateStored_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contracts/user-contract/validate", r.URL.Path)

		var req models.ValidateValuesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hi", req.Values["greeting"])

		_ = json.NewEncoder(w).Encode(models.ValidateResponse{Valid: true})
	})

	result, err := client.ValidateStored(context.Background(), "user-contract", models.ReceivedValues{"greeting": "hi"})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateStored_UnknownContract(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "contract was not found", http.StatusNotFound)
	})

	_, err := client.ValidateStored(context.Background(), "missing", models.ReceivedValues{})
	require.ErrorIs(t, err, ErrContractNotFound)
}
