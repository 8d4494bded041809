package async_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"orderflow/internal/infrastructure/async"
)

func TestWorkerPool_RunsSubmittedTasks(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 3, zap.NewNop(), async.WithQueue(10))

	var n atomic.Int32
	for i := 0; i < 20; i++ {
		require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
			n.Add(1)
		}))
	}

	require.NoError(t, p.Shutdown(context.Background()))
	require.Equal(t, int32(20), n.Load())
}

func TestWorkerPool_SubmitAfterShutdown(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, nil)
	require.NoError(t, p.Shutdown(context.Background()))
	require.NoError(t, p.Shutdown(context.Background()))

	require.False(t, p.Submit(context.Background(), func(ctx context.Context) {
		t.Error("task must not run")
	}))
}

func TestWorkerPool_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	p := async.NewWorkerPool(context.Background(), 1, zap.New(core))

	var wg sync.WaitGroup
	wg.Add(1)
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
		panic("boom")
	}))
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
		wg.Done()
	}))
	wg.Wait()

	require.NoError(t, p.Shutdown(context.Background()))
	require.Equal(t, 1, logs.FilterMessage("task panicked").Len())
}

func TestWorkerPool_TaskTimeout(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, nil, async.WithTaskTimeout(10*time.Millisecond))

	errc := make(chan error, 1)
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
		<-ctx.Done()
		errc <- ctx.Err()
	}))

	require.ErrorIs(t, <-errc, context.DeadlineExceeded)
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestWorkerPool_ShutdownDeadline(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, nil, async.WithTaskTimeout(time.Minute))

	started := make(chan struct{})
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Shutdown(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWorkerPool_SubmitHonoursContext(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, nil)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	block := make(chan struct{})
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) { <-block }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, p.Submit(ctx, func(ctx context.Context) {}))
	close(block)
}

func TestWorkerPool_ShutdownReleasesBlockedSubmit(t *testing.T) {
	p := async.NewWorkerPool(context.Background(), 1, nil, async.WithTaskTimeout(time.Minute))

	started := make(chan struct{})
	require.True(t, p.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	}))
	<-started

	submitted := make(chan bool, 1)
	go func() {
		submitted <- p.Submit(context.Background(), func(ctx context.Context) {})
	}()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	begin := time.Now()
	err := p.Shutdown(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(begin), time.Second)
	require.False(t, <-submitted)
}
