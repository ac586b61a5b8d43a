// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okarpov/paramgate/internal/app"
	"github.com/okarpov/paramgate/internal/engine"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/service"
	"github.com/okarpov/paramgate/internal/store"
)

// writeJSON serializes v into the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// mapServiceError translates service- and store-level sentinel errors into
// HTTP status codes. Anything unrecognised is a 500.
func mapServiceError(w http.ResponseWriter, r *http.Request, caller string, err error) {
	log := logger.FromRequest(r)
	log.Err(err).Str("func", caller).Msg("request failed")

	switch {
	case errors.Is(err, service.ErrEmptyContractName),
		errors.Is(err, service.ErrInvalidContractDocument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrContractNotFound):
		http.Error(w, app.MsgContractNotFound, http.StatusNotFound)
	case errors.Is(err, store.ErrContractAlreadyExists):
		http.Error(w, app.MsgContractAlreadyExists, http.StatusConflict)
	case errors.Is(err, engine.ErrDepthExceeded):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
