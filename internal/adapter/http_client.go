// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/okarpov/paramgate/models"
)

// HTTPClientConfig configures the HTTP client adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpClientAdapter struct {
	client *resty.Client
}

// NewHTTPClient constructs a [Client] speaking to the paramgate HTTP API at
// cfg.BaseURL.
func NewHTTPClient(cfg HTTPClientConfig) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpClientAdapter{client: cli}
}

func (h *httpClientAdapter) RegisterContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contract).
		Post("/api/contracts/")
	if err != nil {
		return models.StoredContract{}, fmt.Errorf("register contract request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredContract{}, err
	}

	var saved models.StoredContract
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.StoredContract{}, fmt.Errorf("decode register contract response: %w", err)
	}

	return saved, nil
}

func (h *httpClientAdapter) GetContract(ctx context.Context, name string) (models.StoredContract, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/contracts/" + name)
	if err != nil {
		return models.StoredContract{}, fmt.Errorf("get contract request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredContract{}, err
	}

	var contract models.StoredContract
	if err = json.Unmarshal(resp.Body(), &contract); err != nil {
		return models.StoredContract{}, fmt.Errorf("decode get contract response: %w", err)
	}

	return contract, nil
}

func (h *httpClientAdapter) ListContracts(ctx context.Context) ([]models.StoredContract, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/contracts/")
	if err != nil {
		return nil, fmt.Errorf("list contracts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var contracts []models.StoredContract
	if err = json.Unmarshal(resp.Body(), &contracts); err != nil {
		return nil, fmt.Errorf("decode list contracts response: %w", err)
	}

	return contracts, nil
}

func (h *httpClientAdapter) DeleteContract(ctx context.Context, name string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/contracts/" + name)
	if err != nil {
		return fmt.Errorf("delete contract request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpClientAdapter) Validate(ctx context.Context, contract models.Contract, values models.ReceivedValues) (models.ValidateResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateRequest{Contract: contract, Values: values}).
		Post("/api/validate")
	if err != nil {
		return models.ValidateResponse{}, fmt.Errorf("validate request: %w", err)
	}

	return decodeValidateResponse(resp)
}

func (h *httpClientAdapter) ValidateStored(ctx context.Context, name string, values models.ReceivedValues) (models.ValidateResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateValuesRequest{Values: values}).
		Post("/api/contracts/" + name + "/validate")
	if err != nil {
		return models.ValidateResponse{}, fmt.Errorf("validate stored request: %w", err)
	}

	return decodeValidateResponse(resp)
}

// decodeValidateResponse treats 422 as a normal validation verdict: the
// server uses it to carry a failing report, which the caller receives as
// Valid=false rather than as an error.
func decodeValidateResponse(resp *resty.Response) (models.ValidateResponse, error) {
	if resp.StatusCode() != http.StatusUnprocessableEntity {
		if err := mapHTTPError(resp); err != nil {
			return models.ValidateResponse{}, err
		}
	}

	var result models.ValidateResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ValidateResponse{}, fmt.Errorf("decode validate response: %w", err)
	}

	return result, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrContractNotFound
	case http.StatusConflict:
		return ErrContractAlreadyExists
	case http.StatusBadRequest:
		if body != "" {
			return fmt.Errorf("%w: %s", ErrBadRequest, body)
		}
		return ErrBadRequest
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
