// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package service

import (
	"context"

	"github.com/okarpov/paramgate/internal/engine"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/models"
)

type validationService struct {
	engine    *engine.Engine
	contracts ContractService

	logger *logger.Logger
}

// NewValidationService constructs a [ValidationService] running passes on
// the given engine. Stored-contract validation resolves names through the
// contract service.
func NewValidationService(eng *engine.Engine, contracts ContractService, logger *logger.Logger) ValidationService {
	return &validationService{
		engine:    eng,
		contracts: contracts,
		logger:    logger,
	}
}

// Validate runs one pass of the inline contract over the received values
// and consolidates the outcomes into a per-field report. An empty report
// means the values satisfied the contract.
func (s *validationService) Validate(ctx context.Context, contract models.Contract, values models.ReceivedValues) (models.ValidationReport, error) {
	log := logger.FromContext(ctx)

	outcomes, err := s.engine.Validate(contract, values)
	if err != nil {
		log.Err(err).Str("func", "*validationService.Validate").Msg("error: validation pass aborted")
		return nil, err
	}

	report := engine.Consolidate(outcomes)
	log.Debug().Int("outcomes", len(outcomes)).Int("failed_fields", len(report)).Msg("validation pass finished")
	return report, nil
}

// ValidateStored resolves the named contract and validates the received
// values against it. Unknown names surface as [store.ErrContractNotFound].
func (s *validationService) ValidateStored(ctx context.Context, name string, values models.ReceivedValues) (models.ValidationReport, error) {
	stored, err := s.contracts.GetContract(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.Validate(ctx, stored.Contract, values)
}
