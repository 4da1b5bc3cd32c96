package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/mirenbz/dna/genetic"
	"github.com/mirenbz/dna/greedy"
	"github.com/mirenbz/dna/matrixbuilder"
	"github.com/mirenbz/dna/pmatrix"
	"github.com/mirenbz/dna/polresult"
	"github.com/mirenbz/dna/rngutil"
	"github.com/mirenbz/dna/statement"
	"github.com/mirenbz/dna/timeslice"
)

// Engine is PolarizationEngine: it orchestrates a StatementSource, an
// Aggregator and the two per-slice optimizers into Compute, and retains
// the last computed series for GetResults.
type Engine struct {
	src statement.Source
	agg pmatrix.Aggregator

	sink    EventSink
	workers int

	mu          sync.Mutex
	lastResults polresult.TimeSeries
}

// New constructs an Engine over src and agg. Both must be non-nil; opts
// configure the EventSink and worker-pool size (defaults: a no-op sink,
// GOMAXPROCS(0) workers).
func New(src statement.Source, agg pmatrix.Aggregator, opts ...Option) *Engine {
	if src == nil {
		panic("engine: New received a nil Source")
	}
	if agg == nil {
		panic("engine: New received a nil Aggregator")
	}
	e := &Engine{
		src:     src,
		agg:     agg,
		sink:    noopSink{},
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute validates cfg, builds the slice sequence and matrix pairs, then
// maps the configured optimizer over slices in parallel, returning
// results in chronological (slice-index) order.
func (e *Engine) Compute(ctx context.Context, cfg Config) (polresult.TimeSeries, error) {
	cfg = cfg.normalize(e.sink)

	tsCfg := timeslice.Config{
		TimeWindow:              cfg.TimeWindow,
		WindowSize:              cfg.WindowSize,
		Kernel:                  cfg.Kernel,
		IndentTime:              cfg.IndentTime,
		Start:                   cfg.Start,
		Stop:                    cfg.Stop,
		Variable1:               cfg.Variable1,
		Variable1IsDocumentAttr: cfg.Variable1IsDocumentAttr,
		Variable2:               cfg.Variable2,
		Variable2IsDocumentAttr: cfg.Variable2IsDocumentAttr,
		Qualifier:               cfg.Qualifier,
		QualifierIsDocumentAttr: cfg.QualifierIsDocumentAttr,
	}
	slices, err := timeslice.Build(ctx, e.src, tsCfg)
	if err != nil {
		return nil, err
	}

	pairs, err := matrixbuilder.Build(e.agg, slices)
	if err != nil {
		return nil, err
	}

	baseSeed := cfg.RandomSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	seeds := make([]int64, len(slices))
	for i := range seeds {
		seeds[i] = rngutil.DeriveSeed(baseSeed, uint64(i))
	}

	results := make(polresult.TimeSeries, len(slices))
	e.dispatch(cfg, slices, pairs, seeds, results)

	e.mu.Lock()
	e.lastResults = results
	e.mu.Unlock()

	return results, nil
}

// GetResults returns the series produced by the most recent Compute call,
// or nil if Compute has not yet run.
func (e *Engine) GetResults() polresult.TimeSeries {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastResults
}

// dispatch runs one optimizer task per slice index over a fixed-size
// worker pool; no shared mutable state crosses slice boundaries, so
// results[i] is written by exactly one goroutine.
func (e *Engine) dispatch(cfg Config, slices []timeslice.Slice, pairs []matrixbuilder.SlicePair, seeds []int64, results polresult.TimeSeries) {
	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			results[i] = e.runSlice(cfg, slices[i], pairs[i], seeds[i])
		}
	}

	n := e.workers
	if n > len(slices) {
		n = len(slices)
	}
	if n <= 0 {
		n = 1
	}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go worker()
	}
	for i := range slices {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (e *Engine) runSlice(cfg Config, sl timeslice.Slice, pair matrixbuilder.SlicePair, seed int64) polresult.Result {
	sk := sl.Skeleton
	var (
		res polresult.Result
		err error
	)
	switch cfg.Algorithm {
	case AlgorithmGenetic:
		res, err = genetic.Drive(pair.G, pair.C, sk.Labels, sk.Start, sk.Midpoint, sk.End, genetic.Params{
			NumParents:    cfg.NumParents,
			NumIterations: cfg.NumIterations,
			ElitePct:      cfg.ElitePct,
			MutPct:        cfg.MutPct,
			Normalize:     cfg.Normalize,
			K:             cfg.NumClusters,
		}, seed)
	default:
		res, err = greedy.Drive(pair.G, pair.C, sk.Labels, sk.Start, sk.Midpoint, sk.End, greedy.Params{
			Normalize: cfg.Normalize,
			K:         cfg.NumClusters,
		}, seed)
	}
	if err != nil {
		// An input error is fatal for the slice only: log and fall back to
		// the degenerate result rather than abort the series.
		e.sink.Error("engine: slice at %s failed: %v", sk.Midpoint, err)
		return polresult.Degenerate(sk.Start, sk.Midpoint, sk.End)
	}
	return res
}
