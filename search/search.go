package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cointray/change"
	"github.com/katalvlaran/cointray/multiset"
	"github.com/katalvlaran/cointray/simulate"
	"github.com/katalvlaran/cointray/till"
)

// Enumerate lists every candidate described by o, in search order:
// varied slot index outer, ascending replacement inner.
//
// Errors: ErrEmptySlots, ErrBadSlot, ErrBadRange.
// Complexity: O(S · R · |Slots|).
func Enumerate(o Options) ([]Candidate, error) {
	if len(o.Slots) == 0 {
		return nil, ErrEmptySlots
	}
	for i, s := range o.Slots {
		if s <= 0 {
			return nil, fmt.Errorf("%w: slot %d has value %d", ErrBadSlot, i, s)
		}
	}
	if o.From < 1 || o.To < o.From {
		return nil, fmt.Errorf("%w: got %d..%d", ErrBadRange, o.From, o.To)
	}

	varied := o.Varied
	if len(varied) == 0 {
		varied = make([]int, len(o.Slots))
		for i := range varied {
			varied[i] = i
		}
	}
	for _, i := range varied {
		if i < 0 || i >= len(o.Slots) {
			return nil, fmt.Errorf("%w: index %d outside %d slots", ErrBadSlot, i, len(o.Slots))
		}
	}

	var (
		out = make([]Candidate, 0, len(varied)*(o.To-o.From+1))
		idx int
		r   int
	)
	for _, slot := range varied {
		for r = o.From; r <= o.To; r++ {
			denoms := make([]int, 0, len(o.Slots)+1)
			denoms = append(denoms, change.Unit)
			denoms = append(denoms, o.Slots...)
			denoms[slot+1] = r

			set, err := change.NewSet(denoms...)
			if err != nil {
				return nil, err
			}
			out = append(out, Candidate{
				Index:         idx,
				Slot:          slot,
				Replacement:   r,
				Denominations: denoms,
				Set:           set,
			})
			idx++
		}
	}

	return out, nil
}

// Run simulates every candidate and returns the one with the lowest mean
// tray size. See the package documentation for ordering and seeding rules.
func Run(ctx context.Context, factory SourceFactory, opts ...Option) (res Result, err error) {
	if factory == nil {
		return Result{}, ErrNilFactory
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	candidates, err := Enumerate(cfg)
	if err != nil {
		return Result{}, err
	}

	var (
		start  = time.Now()
		runID  = uuid.NewString()
		logger = cfg.Logger.With(slog.String("run_id", runID))
	)

	ctx, span := otel.Tracer("cointray").Start(ctx, "search.Run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("candidates", len(candidates)),
			attribute.Int("length", cfg.Length),
			attribute.Int("workers", cfg.Workers),
			attribute.Int64("seed", cfg.Seed),
			attribute.String("strategy", cfg.Strategy.String()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger.Info("search_start",
		slog.Int("candidates", len(candidates)),
		slog.Any("slots", cfg.Slots),
		slog.Int("from", cfg.From),
		slog.Int("to", cfg.To),
		slog.Int("length", cfg.Length),
		slog.Int("workers", cfg.Workers),
		slog.Int64("seed", cfg.Seed),
		slog.String("strategy", cfg.Strategy.String()),
	)

	trials := make([]Trial, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range candidates {
		if gctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := runTrial(candidates[i], factory, cfg)
			if err != nil {
				trialsTotal.WithLabelValues("error").Inc()
				return err
			}
			trialsTotal.WithLabelValues("success").Inc()
			trialDuration.Observe(t.Elapsed.Seconds())
			trials[i] = t

			logger.Debug("trial_done",
				slog.Int("index", i),
				slog.String("set", t.Candidate.Set.String()),
				slog.Float64("score", t.Score),
			)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		logger.Error("search_failed", slog.String("error", err.Error()))
		return Result{}, err
	}
	// A cancellation between launches stops the loop without a failing goroutine.
	if err = ctx.Err(); err != nil {
		logger.Error("search_failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("search: %w", err)
	}

	winner, _, _ := multiset.MinBy(trials, func(t Trial) float64 { return t.Score })
	bestScore.Set(winner.Score)

	res = Result{
		RunID:   runID,
		Winner:  winner,
		Trials:  trials,
		Elapsed: time.Since(start),
	}

	span.SetAttributes(
		attribute.String("winner", winner.Candidate.Set.String()),
		attribute.Float64("score", winner.Score),
	)
	logger.Info("search_done",
		slog.String("winner", winner.Candidate.Set.String()),
		slog.Float64("score", winner.Score),
		slog.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

// runTrial scores one candidate with its own source, till and simulator.
func runTrial(c Candidate, factory SourceFactory, cfg Options) (Trial, error) {
	start := time.Now()

	seed := cfg.Seed
	if cfg.IndependentStreams {
		seed += int64(c.Index)
	}

	src, err := factory(seed)
	if err != nil {
		return Trial{}, fmt.Errorf("search: candidate %d %s: %w", c.Index, c.Set, err)
	}
	sim, err := simulate.NewForSet(c.Set, src,
		till.WithStrategy(cfg.Strategy),
		till.WithModulus(cfg.Modulus),
	)
	if err != nil {
		return Trial{}, fmt.Errorf("search: candidate %d %s: %w", c.Index, c.Set, err)
	}
	score, err := sim.Run(cfg.Length)
	if err != nil {
		return Trial{}, fmt.Errorf("search: candidate %d %s: %w", c.Index, c.Set, err)
	}

	return Trial{
		Candidate: c,
		Score:     score,
		Seed:      seed,
		Elapsed:   time.Since(start),
	}, nil
}
