package workers

import (
	"context"
	"testing"
	"time"

	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/internal/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCacheRefreshWorker_RefreshesOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContracts := mock.NewMockContractService(ctrl)

	refreshed := make(chan struct{}, 1)
	mockContracts.EXPECT().
		RefreshCache(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return nil
		}).
		MinTimes(1)

	w := NewCacheRefreshWorker(mockContracts, 10*time.Millisecond, logger.NewLogger("test")).(*cacheRefreshWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Run(ctx)
	defer w.Stop()

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("worker never refreshed the cache")
	}
}

func TestCacheRefreshWorker_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContracts := mock.NewMockContractService(ctrl)
	mockContracts.EXPECT().RefreshCache(gomock.Any()).Return(nil).AnyTimes()

	w := NewCacheRefreshWorker(mockContracts, 10*time.Millisecond, logger.NewLogger("test")).(*cacheRefreshWorker)

	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker goroutine did not exit after context cancel")
	}
}

func TestCacheRefreshWorker_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContracts := mock.NewMockContractService(ctrl)

	w := NewCacheRefreshWorker(mockContracts, time.Minute, logger.NewLogger("test")).(*cacheRefreshWorker)

	// stopping an idle worker must not panic or block
	w.Stop()
	w.Stop()

	require.NotPanics(t, func() {
		w.Run(context.Background())
		w.Stop()
		w.Stop()
	})
}

func TestWorkers_RunsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mock.NewMockContractService(ctrl)
	second := mock.NewMockContractService(ctrl)
	first.EXPECT().RefreshCache(gomock.Any()).Return(nil).AnyTimes()
	second.EXPECT().RefreshCache(gomock.Any()).Return(nil).AnyTimes()

	log := logger.NewLogger("test")
	w1 := NewCacheRefreshWorker(first, 5*time.Millisecond, log).(*cacheRefreshWorker)
	w2 := NewCacheRefreshWorker(second, 5*time.Millisecond, log).(*cacheRefreshWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewWorkers(w1, w2).Run(ctx)
	defer func() {
		w1.Stop()
		w2.Stop()
	}()

	time.Sleep(20 * time.Millisecond)
}
