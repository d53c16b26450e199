// Package engine implements the exchange optimizer of spec.md §4.5: the
// two-level search loop that, for each element in id order, evaluates
// every admissible partner, tentatively swaps, and commits only the best
// strictly-improving swap.
package engine

import (
	"context"

	"github.com/statunizaga/anticlust/internal/category"
	"github.com/statunizaga/anticlust/internal/core"
	"github.com/statunizaga/anticlust/internal/membership"
	"github.com/statunizaga/anticlust/internal/objective"
)

// SwapTrace records one candidate evaluated during a pass: the element and
// partner considered, the objective value before and after the tentative
// swap, and whether this candidate was the one ultimately committed.
type SwapTrace struct {
	Element         int
	Partner         int
	ObjectiveBefore float64
	ObjectiveAfter  float64
	Committed       bool
}

// Result carries the outcome of a pass (Run) or a run-to-fixed-point
// (RunToFixedPoint): the final objective, how many swaps were committed,
// and -- when WithTrace is set -- the full candidate trace.
type Result struct {
	Objective float64
	Swaps     int
	Trace     []SwapTrace
}

// Optimizer runs the exchange method over a membership.Index and
// objective.Cache built by the caller. It holds no domain state of its
// own; Run and RunToFixedPoint are pure functions of the arguments given
// to them plus the Optimizer's own trace/iteration configuration.
type Optimizer struct {
	trace         bool
	maxIterations int
}

// NewOptimizer builds an Optimizer from functional options.
func NewOptimizer(opts ...Option) *Optimizer {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return &Optimizer{trace: o.trace, maxIterations: o.maxIterations}
}

// categoryOf returns the admissible-partner category of element i:
// elems[i].Category when categorical constraints are enabled, or the
// single degenerate category 0 otherwise (spec.md §4.4).
func categoryOf(elems []core.Element, useCats bool, i core.LocalID) int {
	if !useCats {
		return 0
	}
	return elems[i].Category
}

// Run executes exactly one pass of the two-level exchange loop of
// spec.md §4.5 over idx and cache, honoring ctx cancellation between
// elements of the outer loop (never inside the inner loop: a call that
// begins scoring an element's candidates runs it to completion). It
// mutates idx and cache in place and returns the resulting objective and
// swap count.
func (o *Optimizer) Run(ctx context.Context, elems []core.Element, idx *membership.Index, cache objective.Cache, partners *category.Partners, useCats bool) (Result, error) {
	n := len(elems)
	var trace []SwapTrace
	swaps := 0

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return Result{Objective: cache.Objective(), Swaps: swaps, Trace: trace}, ctx.Err()
		default:
		}

		self := core.LocalID(i)
		currentS := cache.Objective()
		bestObjective := currentS
		bestPartner := -1
		bestTraceIdx := -1

		for _, j := range partners.Of(categoryOf(elems, useCats, self)) {
			if j == self {
				continue
			}
			if idx.ClusterOf(self) == idx.ClusterOf(j) {
				continue
			}

			cache.ApplySwap(self, j, idx)
			tentativeS := cache.Objective()

			if o.trace {
				trace = append(trace, SwapTrace{
					Element:         i,
					Partner:         int(j),
					ObjectiveBefore: currentS,
					ObjectiveAfter:  tentativeS,
				})
			}

			if tentativeS > bestObjective {
				bestObjective = tentativeS
				bestPartner = int(j)
				if o.trace {
					bestTraceIdx = len(trace) - 1
				}
			}

			// Undo: ApplySwap is self-inverse (internal/objective), so a
			// second call restores the pre-candidate state exactly.
			cache.ApplySwap(self, j, idx)
		}

		if bestPartner >= 0 {
			cache.ApplySwap(self, core.LocalID(bestPartner), idx)
			swaps++
			if o.trace && bestTraceIdx >= 0 {
				trace[bestTraceIdx].Committed = true
			}
		}
	}

	return Result{Objective: cache.Objective(), Swaps: swaps, Trace: trace}, nil
}

// RunToFixedPoint calls Run repeatedly until either a pass commits zero
// swaps or the Optimizer's configured MaxIterations passes have run
// (unlimited when MaxIterations <= 0). spec.md §4.5 specifies the
// one-pass primitive Run and leaves repeated invocation to the caller;
// this is a packaging convenience over exactly that pattern (REDESIGN
// FLAGS).
func (o *Optimizer) RunToFixedPoint(ctx context.Context, elems []core.Element, idx *membership.Index, cache objective.Cache, partners *category.Partners, useCats bool) (Result, error) {
	var trace []SwapTrace
	totalSwaps := 0
	var lastObjective float64

	for iter := 0; o.maxIterations <= 0 || iter < o.maxIterations; iter++ {
		res, err := o.Run(ctx, elems, idx, cache, partners, useCats)
		if err != nil {
			res.Trace = append(trace, res.Trace...)
			res.Swaps += totalSwaps
			return res, err
		}
		totalSwaps += res.Swaps
		trace = append(trace, res.Trace...)
		lastObjective = res.Objective
		if res.Swaps == 0 {
			break
		}
	}

	return Result{Objective: lastObjective, Swaps: totalSwaps, Trace: trace}, nil
}
