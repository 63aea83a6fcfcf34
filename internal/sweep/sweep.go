// Package sweep runs batches of random soups headlessly and reports how each
// one ends.
package sweep

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conway/pkg/core"
	"conway/pkg/grid"
)

// Outcome describes why a run stopped.
type Outcome int

const (
	// Capped runs reached the generation limit while still changing.
	Capped Outcome = iota
	// Extinct runs have no live cells left.
	Extinct
	// Settled runs repeat a recent generation (still life or oscillator).
	Settled
)

func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Settled:
		return "settled"
	default:
		return "capped"
	}
}

// Options controls a batch.
type Options struct {
	Rows, Cols     int
	Runs           int
	Seed           int64
	Density        float64
	MaxGenerations int
	Wrap           bool
	Workers        int
	// Depth is how many past generations are compared for repeats.
	Depth int
}

// DefaultOptions returns a small batch over 64x64 tori.
func DefaultOptions() Options {
	return Options{
		Rows:           64,
		Cols:           64,
		Runs:           8,
		Seed:           42,
		Density:        0.25,
		MaxGenerations: 2000,
		Wrap:           true,
		Workers:        runtime.NumCPU(),
		Depth:          16,
	}
}

// Validate reports options that cannot describe a batch.
func (o Options) Validate() error {
	switch {
	case o.Rows <= 0 || o.Cols <= 0:
		return errors.Errorf("grid size must be positive, got %dx%d", o.Rows, o.Cols)
	case o.Runs <= 0:
		return errors.Errorf("runs must be positive, got %d", o.Runs)
	case o.Density < 0 || o.Density > 1:
		return errors.Errorf("density must be within [0, 1], got %v", o.Density)
	case o.MaxGenerations < 0:
		return errors.Errorf("generation cap must not be negative, got %d", o.MaxGenerations)
	}
	return nil
}

// Result summarizes one run.
type Result struct {
	Seed        int64
	Generations int
	Population  int
	Outcome     Outcome
	Final       *grid.Grid
}

// Simulate steps g until it dies out, repeats one of the last depth
// generations or reaches maxGenerations. It returns the number of steps
// taken.
func Simulate(ctx context.Context, g *grid.Grid, wrap bool, maxGenerations, depth int) (int, Outcome, error) {
	h := grid.NewHistory(depth)
	h.Record(g)
	for gen := 0; ; gen++ {
		if g.Population() == 0 {
			return gen, Extinct, nil
		}
		if gen >= maxGenerations {
			return gen, Capped, nil
		}
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return gen, Capped, err
			}
		}
		g.Step(wrap)
		if h.Record(g) {
			return gen + 1, Settled, nil
		}
	}
}

// Run executes opts.Runs independent soups, seeded opts.Seed, opts.Seed+1,
// and so on. Results are ordered by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, opts.Runs)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(opts.Workers, 1))
	for i := range results {
		seed := opts.Seed + int64(i)
		eg.Go(func() error {
			g := grid.New(opts.Rows, opts.Cols)
			g.Randomize(core.NewRNG(seed).Source(), opts.Density)
			gens, outcome, err := Simulate(ctx, g, opts.Wrap, opts.MaxGenerations, opts.Depth)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seed)
			}
			results[i] = Result{
				Seed:        seed,
				Generations: gens,
				Population:  g.Population(),
				Outcome:     outcome,
				Final:       g,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
