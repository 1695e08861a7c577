// Package engine implements the intelligence layer of the backend: the
// forecast, draft budget, scenario and recommendation engines.
//
// The engines stand in for a real model integration. They simulate call
// latency and derive their output from the provided data plus a bounded
// random fluctuation. The random source is seedable so that tests can
// assert exact outputs, and the interface stays stable regardless of the
// backing implementation.
package engine

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnavailable is returned when an engine call cannot complete, e.g.
// because the caller canceled it. Callers must keep previously produced
// results visible when they receive it.
var ErrUnavailable = errors.New("the analysis engine is currently unavailable")

// Options configure an Engine.
type Options struct {
	// Seed for the random source. When nil, the engine seeds itself from
	// the current time.
	Seed *int64

	// Latency simulates the round-trip of a model call. Zero disables the
	// simulation, which tests rely on.
	Latency time.Duration

	// Now is the clock used for anchoring forecasts and budget periods.
	// Defaults to time.Now.
	Now func() time.Time
}

// Engine produces forecasts, draft budgets, scenario analyses and
// recommendations. Methods are safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	rng     *rand.Rand
	latency time.Duration
	now     func() time.Time
	printer *message.Printer
}

// New returns a new Engine.
func New(opts Options) *Engine {
	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		rng:     rand.New(rand.NewSource(seed)),
		latency: opts.Latency,
		now:     now,
		printer: message.NewPrinter(language.English),
	}
}

// simulate waits for the configured latency, honoring cancellation.
// An engine call that is canceled mid-flight reports ErrUnavailable.
func (e *Engine) simulate(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		if ctx.Err() != nil {
			return ErrUnavailable
		}
		return nil
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ErrUnavailable
	case <-timer.C:
		return nil
	}
}

// float64 returns a uniform random number in [0, 1).
func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

// intn returns a uniform random number in [0, n).
func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// money formats a whole-unit amount with thousands separators, e.g.
// "$1,234,567".
func (e *Engine) money(amount int64) string {
	return e.printer.Sprintf("$%d", amount)
}
