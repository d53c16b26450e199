// Package objective implements the centroid/objective cache of spec.md
// §4.3 for both objective variants. Both implementations satisfy the same
// Cache interface and rely on membership.Index.Swap being self-inverse: a
// Cache.ApplySwap call is itself self-inverse (applying it twice restores
// the pre-state of both the cache and the membership index), so the
// exchange optimizer evaluates a candidate by calling ApplySwap once,
// reading Objective, and calling ApplySwap again to undo -- the
// "tentative/commit" pattern spec.md §9 describes, without a snapshot copy.
package objective

import (
	"github.com/statunizaga/anticlust/internal/core"
	"github.com/statunizaga/anticlust/internal/membership"
	"gonum.org/v1/gonum/floats"
)

// Cache maintains the K-vector of per-cluster objective contributions and
// knows how to update it incrementally across a swap.
type Cache interface {
	// Objective returns S = Σ_c v_c for the current membership.
	Objective() float64

	// ApplySwap performs the swap of i and j (via idx.Swap) together with
	// the incremental update of the affected per-cluster contributions.
	// Calling ApplySwap(i, j, idx) twice in a row restores the pre-state.
	ApplySwap(i, j core.LocalID, idx *membership.Index)
}

func sum(v []float64) float64 {
	return floats.Sum(v)
}
