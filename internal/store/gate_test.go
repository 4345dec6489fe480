package store

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_ConcurrentWaitersShareOneInit(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	g := NewGate(func(ctx context.Context) error {
		calls.Add(1)
		<-release
		return nil
	})

	const waiters = 32
	var wg sync.WaitGroup
	errs := make(chan error, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- g.Wait(context.Background())
		}()
	}

	assert.False(t, g.Ready())
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, g.Ready())
}

func TestGate_LateCallerDoesNotRerun(t *testing.T) {
	var calls atomic.Int32
	g := NewGate(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, g.Wait(context.Background()))
	require.NoError(t, g.Wait(context.Background()))
	g.Start(context.Background())
	require.NoError(t, g.Wait(context.Background()))

	assert.Equal(t, int32(1), calls.Load())
}

func TestGate_StartIsEager(t *testing.T) {
	started := make(chan struct{})
	g := NewGate(func(ctx context.Context) error {
		close(started)
		return nil
	})

	g.Start(context.Background())

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not trigger initialization")
	}
	require.NoError(t, g.Wait(context.Background()))
}

func TestGate_FailureIsSticky(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("disk full")
	g := NewGate(func(ctx context.Context) error {
		calls.Add(1)
		return boom
	})

	assert.ErrorIs(t, g.Wait(context.Background()), boom)
	assert.ErrorIs(t, g.Wait(context.Background()), boom)
	assert.False(t, g.Ready())
	assert.Equal(t, int32(1), calls.Load())
}

func TestGate_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	g := NewGate(func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, g.Wait(ctx), context.DeadlineExceeded)
}

func TestGate_InitSurvivesCallerCancellation(t *testing.T) {
	release := make(chan struct{})
	g := NewGate(func(ctx context.Context) error {
		<-release
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Wait(ctx), context.Canceled)

	close(release)
	assert.NoError(t, g.Wait(context.Background()))
}

func TestGate_NilInit(t *testing.T) {
	g := NewGate(nil)
	assert.ErrorIs(t, g.Wait(context.Background()), ErrNotInitialized)
}

func TestGate_AbandonedWaitersDoNotPileUpGoroutines(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	g := NewGate(func(ctx context.Context) error {
		calls.Add(1)
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := runtime.NumGoroutine()
	const waiters = 200
	for i := 0; i < waiters; i++ {
		assert.ErrorIs(t, g.Wait(ctx), context.Canceled)
	}
	assert.Less(t, runtime.NumGoroutine()-before, waiters/4)

	close(release)
	require.NoError(t, g.Wait(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}
