// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/service"
)

type cacheRefreshWorker struct {
	contracts service.ContractService
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheRefreshWorker creates a worker that reloads the contract cache
// from the store on a ticker. The worker is idle until Run is called.
func NewCacheRefreshWorker(contracts service.ContractService, interval time.Duration, logger *logger.Logger) Worker {
	return &cacheRefreshWorker{
		contracts: contracts,
		interval:  interval,
		logger:    logger,
	}
}

// Run implements [Worker]. It stops any previously running refresh loop,
// then launches a background goroutine that calls RefreshCache every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *cacheRefreshWorker) Run(ctx context.Context) {
	interval := w.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if err := w.contracts.RefreshCache(workerCtx); err != nil {
					w.logger.Err(err).Msg("contract cache refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running
// (no-op in that case).
func (w *cacheRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
