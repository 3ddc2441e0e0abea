// Package waitfor implements the readiness gate that blocks container
// startup until a dependency service accepts connections. The gate is a
// bounded polling loop: probe, sleep a constant interval, retry, and
// give up after the attempt budget is spent.
package waitfor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/wayfarerhq/wayfarer/internal/logging"
)

// ErrNotReady is returned when the attempt budget is exhausted without a
// successful probe. Callers must treat it as fatal: starting the server
// against an unready dependency produces silent failures downstream.
var ErrNotReady = errors.New("dependency not ready")

// Probe performs a single readiness check. A nil return means the
// dependency is accepting connections.
type Probe func(ctx context.Context) error

// Gate polls a dependency until it is ready or the budget runs out. A
// Gate holds no state between calls; Wait may be invoked repeatedly.
type Gate struct {
	name     string
	probe    Probe
	attempts int
	interval time.Duration
	logf     func(format string, args ...interface{})
	timer    backoff.Timer
	onProbe  func(ok bool)
}

// Option adjusts optional Gate behavior.
type Option func(*Gate)

// WithLogf substitutes the diagnostic stream. The default writes each
// line through the repo logger.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(g *Gate) { g.logf = logf }
}

// WithTimer substitutes the timer used to sleep between attempts. Tests
// use a fake timer to observe sleep durations without waiting.
func WithTimer(t backoff.Timer) Option {
	return func(g *Gate) { g.timer = t }
}

// WithProbeHook registers a callback invoked after every probe with its
// outcome. Used to feed telemetry counters.
func WithProbeHook(fn func(ok bool)) Option {
	return func(g *Gate) { g.onProbe = fn }
}

// New builds a gate for the named dependency. An attempt budget below
// one is treated as one.
func New(name string, probe Probe, attempts int, interval time.Duration, opts ...Option) *Gate {
	if attempts < 1 {
		attempts = 1
	}
	g := &Gate{
		name:     name,
		probe:    probe,
		attempts: attempts,
		interval: interval,
		logf: func(format string, args ...interface{}) {
			logging.Info(fmt.Sprintf(format, args...), nil)
		},
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Wait probes until success or budget exhaustion. It performs at most
// `attempts` probes with a constant `interval` sleep between failed
// attempts; the final failed attempt does not sleep. Every failed probe
// emits one "Waiting for <name> to be ready..." line, and the terminal
// outcome emits "<name> is ready" or "<name> is not ready". A canceled
// context aborts the wait early and returns the context error.
func (g *Gate) Wait(ctx context.Context) error {
	op := func() error {
		if err := g.probe(ctx); err != nil {
			if g.onProbe != nil {
				g.onProbe(false)
			}
			g.logf("Waiting for %s to be ready...", g.name)
			return err
		}
		if g.onProbe != nil {
			g.onProbe(true)
		}
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(g.interval), uint64(g.attempts-1)),
		ctx,
	)

	var err error
	if g.timer != nil {
		err = backoff.RetryNotifyWithTimer(op, bo, nil, g.timer)
	} else {
		err = backoff.Retry(op, bo)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		g.logf("%s is not ready", g.name)
		return fmt.Errorf("%w: %v", ErrNotReady, err)
	}
	g.logf("%s is ready", g.name)
	return nil
}
