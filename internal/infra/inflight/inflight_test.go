package inflight

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"jelpi/config"
	domainerrors "jelpi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalGuard_SecondAcquireFailsFast(t *testing.T) {
	guard := NewLocalGuard()
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "ACT-123456")
	require.NoError(t, err)

	_, err = guard.Acquire(ctx, "ACT-123456")
	require.ErrorIs(t, err, domainerrors.ErrOperationInFlight)

	other, err := guard.Acquire(ctx, "JLP001")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := guard.Acquire(ctx, "ACT-123456")
	require.NoError(t, err)
	again()
}

func TestLocalGuard_Concurrent(t *testing.T) {
	guard := NewLocalGuard()
	start := make(chan struct{})

	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
		rejected atomic.Int32
		releases = make(chan func(), 16)
	)

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			release, err := guard.Acquire(context.Background(), "ACT-123456")
			if err != nil {
				rejected.Add(1)

				return
			}
			admitted.Add(1)
			releases <- release
		}()
	}

	close(start)
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(15), rejected.Load())

	for release := range releases {
		release()
	}
}

func TestLocalGuard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalGuard().Acquire(ctx, "ACT-123456")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewInFlightGuard(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "default local", cfg: &config.Config{}},
		{name: "explicit local", cfg: &config.Config{InFlight: &config.InFlightConfig{Provider: "local"}}},
		{name: "redis without address", cfg: &config.Config{InFlight: &config.InFlightConfig{Provider: "redis"}}, wantErr: true},
		{name: "unknown provider", cfg: &config.Config{InFlight: &config.InFlightConfig{Provider: "etcd"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, err := NewInFlightGuard(GuardParams{Lc: fxtest.NewLifecycle(t), Config: tt.cfg, Logger: logger})
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, &localGuard{}, guard)
		})
	}
}
