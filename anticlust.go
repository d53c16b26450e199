// Package anticlust partitions N elements into K fixed-size groups that
// maximize a heterogeneity objective, via a single-pass exchange method.
// See doc.go for the full package overview.
package anticlust

import (
	"context"
	"time"

	"github.com/statunizaga/anticlust/engine"
	"github.com/statunizaga/anticlust/internal/category"
	"github.com/statunizaga/anticlust/internal/core"
	"github.com/statunizaga/anticlust/internal/membership"
	"github.com/statunizaga/anticlust/internal/objective"

	"github.com/statunizaga/anticlust/distance"
)

// Result carries the outcome of a call to Variance or Diversity: the final
// objective value, the number of swaps committed, and -- when WithTrace is
// set -- the full per-candidate trace.
type Result struct {
	Objective float64
	Swaps     int
	Trace     []SwapTrace
}

// SwapTrace records one candidate the exchange optimizer evaluated.
type SwapTrace = engine.SwapTrace

// CategoryConstraint configures the diversity entry point's optional
// categorical exchange constraint (spec.md §4.4, §6). A zero-value
// CategoryConstraint (Enabled: false) disables it: every element is
// treated as admissible partner for every other.
type CategoryConstraint struct {
	Enabled       bool
	NumCategories int
	Frequencies   []int
	Categories    []int
}

func fromEngineResult(r engine.Result) Result {
	return Result{Objective: r.Objective, Swaps: r.Swaps, Trace: r.Trace}
}

// Variance partitions n elements into k fixed-size groups maximizing the
// variance objective: the sum, over clusters, of squared Euclidean
// distances from each member to its cluster centroid. data holds the n·m
// feature values column-major (data[j*n+i] is feature j of element i,
// spec.md §4.1). frequencies gives the k target cluster sizes (summing to
// n); clusters holds the initial assignment and is overwritten in place
// with the optimized one on success. On ErrOutOfMemory clusters is left
// untouched.
func Variance(ctx context.Context, data []float64, n, m, k int, frequencies, clusters []int, opts ...Option) (Result, error) {
	start := time.Now()
	o := applyOptions(opts)
	logger := o.logger.WithN(n).WithK(k)

	if err := engine.ValidateShape(n, k, frequencies, clusters); err != nil {
		err = translateError(err)
		o.metricsCollector.RecordRun(time.Since(start), n, k, 0, 0, err)
		logger.LogRun(ctx, n, k, 0, 0, err)
		return Result{}, err
	}

	var (
		elems    []core.Element
		idx      *membership.Index
		cache    *objective.Variance
		partners *category.Partners
		buildErr error
	)
	func() {
		defer engine.Recover(&buildErr)
		elems = core.NewElements(n, clusters, nil)
		core.SetFeatures(elems, data, n, m)
		idx = membership.New(elems, k)
		cache = objective.NewVariance(elems, idx, k, m, frequencies)
		partners = category.New(n, false, nil, 0)
	}()
	if buildErr != nil {
		err := translateError(buildErr)
		o.metricsCollector.RecordRun(time.Since(start), n, k, 0, 0, err)
		logger.LogRun(ctx, n, k, 0, 0, err)
		return Result{}, err
	}

	initial := cache.Objective()
	opt := engine.NewOptimizer(o.engineOpts...)
	res, err := opt.Run(ctx, elems, idx, cache, partners, false)
	if err != nil {
		o.metricsCollector.RecordRun(time.Since(start), n, k, res.Swaps, res.Objective-initial, err)
		logger.LogRun(ctx, n, k, res.Swaps, res.Objective, err)
		return Result{}, err
	}

	logger.LogTrace(ctx, res.Trace)
	writeBack(elems, clusters)
	o.metricsCollector.RecordRun(time.Since(start), n, k, res.Swaps, res.Objective-initial, nil)
	logger.LogRun(ctx, n, k, res.Swaps, res.Objective, nil)
	return fromEngineResult(res), nil
}

// Diversity partitions n elements into k fixed-size groups maximizing the
// diversity objective: the sum, over clusters, of pairwise distances among
// members, drawn from a precomputed N×N distance matrix. distances holds
// the n·n matrix column-major, symmetric with a zero diagonal (spec.md §6
// "Diversity entry point"). cats optionally restricts swaps to same-category
// partners, preserving the joint (category, cluster) distribution. clusters
// is overwritten in place with the optimized assignment on success; on
// ErrOutOfMemory it is left untouched.
func Diversity(ctx context.Context, distances []float64, n, k int, frequencies, clusters []int, cats CategoryConstraint, opts ...Option) (Result, error) {
	start := time.Now()
	o := applyOptions(opts)
	logger := o.logger.WithN(n).WithK(k)

	if err := engine.ValidateShape(n, k, frequencies, clusters); err != nil {
		err = translateError(err)
		o.metricsCollector.RecordRun(time.Since(start), n, k, 0, 0, err)
		logger.LogRun(ctx, n, k, 0, 0, err)
		return Result{}, err
	}

	var (
		elems    []core.Element
		idx      *membership.Index
		cache    *objective.Diversity
		partners *category.Partners
		buildErr error
	)
	func() {
		defer engine.Recover(&buildErr)
		elems = core.NewElements(n, clusters, cats.Categories)
		idx = membership.New(elems, k)
		dist := distance.NewMatrixFromColumnMajor(distances, n)
		cache = objective.NewDiversity(dist, idx, k)
		numCats := cats.NumCategories
		if !cats.Enabled {
			numCats = 0
		}
		partners = category.New(n, cats.Enabled, cats.Categories, numCats)
	}()
	if buildErr != nil {
		err := translateError(buildErr)
		o.metricsCollector.RecordRun(time.Since(start), n, k, 0, 0, err)
		logger.LogRun(ctx, n, k, 0, 0, err)
		return Result{}, err
	}

	initial := cache.Objective()
	opt := engine.NewOptimizer(o.engineOpts...)
	res, err := opt.Run(ctx, elems, idx, cache, partners, cats.Enabled)
	if err != nil {
		o.metricsCollector.RecordRun(time.Since(start), n, k, res.Swaps, res.Objective-initial, err)
		logger.LogRun(ctx, n, k, res.Swaps, res.Objective, err)
		return Result{}, err
	}

	logger.LogTrace(ctx, res.Trace)
	writeBack(elems, clusters)
	o.metricsCollector.RecordRun(time.Since(start), n, k, res.Swaps, res.Objective-initial, nil)
	logger.LogRun(ctx, n, k, res.Swaps, res.Objective, nil)
	return fromEngineResult(res), nil
}

func writeBack(elems []core.Element, clusters []int) {
	for i, e := range elems {
		clusters[i] = e.Cluster
	}
}
