package service

import (
	"github.com/okarpov/paramgate/internal/checks"
	"github.com/okarpov/paramgate/internal/config"
	"github.com/okarpov/paramgate/internal/engine"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/store"
)

// Services aggregates the application services for wiring into the
// transport layer.
type Services struct {
	ContractService   ContractService
	ValidationService ValidationService
}

// NewServices wires the service layer: a validation engine carrying the
// primitive check registry, the contract service over the store, and the
// validation service on top of both.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	var opts []engine.Option
	if cfg.Engine.MaxDepth > 0 {
		opts = append(opts, engine.WithMaxDepth(cfg.Engine.MaxDepth))
	}
	eng := engine.New(checks.Registry(), logger, opts...)

	contractService := NewContractService(storages.ContractRepository, logger)

	return &Services{
		ContractService:   contractService,
		ValidationService: NewValidationService(eng, contractService, logger),
	}
}
