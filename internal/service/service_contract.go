// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package service

import (
	"context"
	"fmt"

	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/store"
	"github.com/okarpov/paramgate/models"
)

type contractService struct {
	contractRepository store.ContractRepository
	cache              *contractCache

	logger *logger.Logger
}

// NewContractService constructs a [ContractService] backed by the given
// repository with an empty in-memory cache.
func NewContractService(contractRepository store.ContractRepository, logger *logger.Logger) ContractService {
	return &contractService{
		contractRepository: contractRepository,
		cache:              newContractCache(),
		logger:             logger,
	}
}

// RegisterContract sanity-checks and persists a new named contract, then
// primes the cache with the stored record.
func (s *contractService) RegisterContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error) {
	if contract.Name == "" {
		return models.StoredContract{}, ErrEmptyContractName
	}
	if err := checkContractDocument(contract.Contract); err != nil {
		return models.StoredContract{}, err
	}

	saved, err := s.contractRepository.SaveContract(ctx, contract)
	if err != nil {
		return models.StoredContract{}, err
	}

	s.cache.put(saved)
	return saved, nil
}

// GetContract serves the contract from cache when possible and falls back
// to the store, priming the cache on a hit.
func (s *contractService) GetContract(ctx context.Context, name string) (models.StoredContract, error) {
	if name == "" {
		return models.StoredContract{}, ErrEmptyContractName
	}

	if contract, ok := s.cache.get(name); ok {
		return contract, nil
	}

	contract, err := s.contractRepository.FindContractByName(ctx, name)
	if err != nil {
		return models.StoredContract{}, err
	}

	s.cache.put(contract)
	return contract, nil
}

func (s *contractService) ListContracts(ctx context.Context) ([]models.StoredContract, error) {
	return s.contractRepository.ListContracts(ctx)
}

// DeleteContract removes the contract from the store and evicts it from the
// cache. The cache entry is evicted even when the store reports the contract
// as missing, so a stale cache cannot resurrect a deleted contract.
func (s *contractService) DeleteContract(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyContractName
	}

	err := s.contractRepository.DeleteContract(ctx, name)
	s.cache.delete(name)
	return err
}

// RefreshCache replaces the cache snapshot with the current store contents.
func (s *contractService) RefreshCache(ctx context.Context) error {
	log := logger.FromContext(ctx)

	contracts, err := s.contractRepository.ListContracts(ctx)
	if err != nil {
		log.Err(err).Str("func", "*contractService.RefreshCache").Msg("error: cannot list contracts")
		return err
	}

	s.cache.replaceAll(contracts)
	log.Debug().Int("contracts", len(contracts)).Msg("contract cache refreshed")
	return nil
}

// checkContractDocument rejects documents that could never be evaluated:
// fields without a name and checks without a name. Anything else, including
// an empty contract and unknown check names, is accepted.
func checkContractDocument(contract models.Contract) error {
	for i, field := range contract {
		if field.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidContractDocument, i)
		}
		for j, check := range field.Checks {
			if check.Name == "" {
				return fmt.Errorf("%w: field %q check %d has no name", ErrInvalidContractDocument, field.Name, j)
			}
		}
	}
	return nil
}
