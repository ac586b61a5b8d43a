// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okarpov/paramgate/internal/app"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/models"
)

// registerContract handles POST /api/contracts/. The body is a
// [models.StoredContract]; the stored record with server-assigned fields is
// returned with 201.
func (h *Handler) registerContract(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var contract models.StoredContract
	if err := json.NewDecoder(r.Body).Decode(&contract); err != nil {
		log.Err(err).Str("func", "*Handler.registerContract").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ContractService.RegisterContract(r.Context(), contract)
	if err != nil {
		mapServiceError(w, r, "*Handler.registerContract", err)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// getContract handles GET /api/contracts/{name}.
func (h *Handler) getContract(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	contract, err := h.services.ContractService.GetContract(r.Context(), name)
	if err != nil {
		mapServiceError(w, r, "*Handler.getContract", err)
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

// listContracts handles GET /api/contracts/.
func (h *Handler) listContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.services.ContractService.ListContracts(r.Context())
	if err != nil {
		mapServiceError(w, r, "*Handler.listContracts", err)
		return
	}

	writeJSON(w, http.StatusOK, contracts)
}

// deleteContract handles DELETE /api/contracts/{name}.
func (h *Handler) deleteContract(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.services.ContractService.DeleteContract(r.Context(), name); err != nil {
		mapServiceError(w, r, "*Handler.deleteContract", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
