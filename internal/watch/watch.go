// Package watch drives periodic regeneration of candidate sets.
//
// The derivation stays free of any scheduling concern; this package owns the
// ticker and hands each freshly generated set to a sink. Cancelling the
// context stops future ticks. In-flight generation is a single hash per
// granularity and is never interrupted mid-computation.
package watch

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bashhack/tidal/internal/clock"
	"github.com/bashhack/tidal/internal/otp"
)

// GenerateFunc produces a candidate set for one time snapshot.
type GenerateFunc func(at time.Time) (otp.CandidateSet, error)

// Sink consumes each generated set along with the instant it was derived
// from. Returning an error stops the watcher.
type Sink func(set otp.CandidateSet, at time.Time) error

// emission pairs a set with its snapshot so the sink renders the instant the
// codes were actually derived from, not whenever it happens to run.
type emission struct {
	set otp.CandidateSet
	at  time.Time
}

// Watcher regenerates candidate sets on a fixed cadence.
type Watcher struct {
	clock    clock.Clock
	interval time.Duration
	generate GenerateFunc
}

// New creates a watcher. The clock is read once per tick so each emitted set
// is internally consistent.
func New(clk clock.Clock, interval time.Duration, generate GenerateFunc) *Watcher {
	return &Watcher{
		clock:    clk,
		interval: interval,
		generate: generate,
	}
}

// Run emits one set immediately and then one per tick until the context is
// cancelled or the sink/generator fails. Cancellation is a normal stop and
// returns nil.
func (w *Watcher) Run(ctx context.Context, sink Sink) error {
	emissions := make(chan emission, 1)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(emissions)
		return w.produce(ctx, emissions)
	})

	g.Go(func() error {
		for e := range emissions {
			if err := sink(e.set, e.at); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (w *Watcher) produce(ctx context.Context, out chan<- emission) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		at := w.clock.Now()
		set, err := w.generate(at)
		if err != nil {
			return err
		}

		select {
		case out <- emission{set: set, at: at}:
		case <-ctx.Done():
			return ctx.Err()
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
