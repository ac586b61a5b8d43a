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

// validate handles POST /api/validate: one inline validation pass over the
// contract and values carried in the request body.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validate").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	report, err := h.services.ValidationService.Validate(r.Context(), req.Contract, req.Values)
	if err != nil {
		mapServiceError(w, r, "*Handler.validate", err)
		return
	}

	writeValidateResponse(w, report)
}

// validateStored handles POST /api/contracts/{name}/validate: a validation
// pass over the values in the body against the named stored contract.
func (h *Handler) validateStored(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	var req models.ValidateValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.validateStored").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	report, err := h.services.ValidationService.ValidateStored(r.Context(), name, req.Values)
	if err != nil {
		mapServiceError(w, r, "*Handler.validateStored", err)
		return
	}

	writeValidateResponse(w, report)
}

// writeValidateResponse renders a validation report: 200 with {"valid":true}
// when the values satisfied the contract, 422 with the per-field report
// otherwise. Violations are the expected outcome of a validation call, not a
// server fault, hence the 4xx.
func writeValidateResponse(w http.ResponseWriter, report models.ValidationReport) {
	if report.Empty() {
		writeJSON(w, http.StatusOK, models.ValidateResponse{Valid: true})
		return
	}

	writeJSON(w, http.StatusUnprocessableEntity, models.ValidateResponse{Valid: false, Errors: report})
}
