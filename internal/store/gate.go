// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// InitFunc performs the one-time backend initialization guarded by a [Gate].
type InitFunc func(ctx context.Context) error

// Gate is a one-shot readiness barrier. The first call to Start or Wait runs
// the initialization exactly once; every waiter, present or future, is
// released with the same result. A failed initialization is not retried.
type Gate struct {
	init InitFunc

	launch sync.Once
	done   chan struct{}
	err    error
}

// NewGate returns a Gate guarding init.
func NewGate(init InitFunc) *Gate {
	return &Gate{
		init: init,
		done: make(chan struct{}),
	}
}

// Start triggers initialization in the background and returns immediately.
// The initialization is detached from ctx cancellation so that a caller
// giving up early does not leave the gate half-initialized.
func (g *Gate) Start(ctx context.Context) {
	g.start(ctx)
}

// Wait triggers initialization if nobody has yet and blocks until it has
// completed, returning its result. If ctx ends first, Wait returns
// ctx.Err() while initialization keeps running for other waiters.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	default:
	}

	g.start(ctx)

	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports, without blocking, whether initialization has completed
// successfully.
func (g *Gate) Ready() bool {
	select {
	case <-g.done:
		return g.err == nil
	default:
		return false
	}
}

// start launches the initialization goroutine at most once per Gate.
func (g *Gate) start(ctx context.Context) {
	g.launch.Do(func() {
		go g.run(context.WithoutCancel(ctx))
	})
}

func (g *Gate) run(ctx context.Context) {
	defer close(g.done)
	if g.init == nil {
		g.err = ErrNotInitialized
		return
	}
	g.err = g.init(ctx)
}
