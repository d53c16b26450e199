package objective

import (
	"github.com/statunizaga/anticlust/distance"
	"github.com/statunizaga/anticlust/internal/core"
	"github.com/statunizaga/anticlust/internal/membership"
	"gonum.org/v1/gonum/floats"
)

// Variance is the centroid/objective cache for the variance objective:
// a K×M matrix of cluster centroids plus a K-vector of per-cluster
// variance contributions (spec.md §2.3, §4.3 "Variance variant").
type Variance struct {
	elems       []core.Element
	m           int
	frequencies []int
	centroids   [][]float64
	v           []float64
	delta       []float64 // scratch buffer for ApplySwap's centroid shift, length m
}

// NewVariance builds the cache from the current membership of idx,
// computing each centroid directly from members and each v_c as
// Σ_{e∈c} ‖e.features − centroid[c]‖².
func NewVariance(elems []core.Element, idx *membership.Index, k, m int, frequencies []int) *Variance {
	vc := &Variance{
		elems:       elems,
		m:           m,
		frequencies: frequencies,
		centroids:   make([][]float64, k),
		v:           make([]float64, k),
		delta:       make([]float64, m),
	}
	for c := 0; c < k; c++ {
		vc.centroids[c] = make([]float64, m)
		vc.recomputeCentroid(idx, c)
	}
	for c := 0; c < k; c++ {
		vc.v[c] = vc.clusterVariance(idx, c)
	}
	return vc
}

func (vc *Variance) recomputeCentroid(idx *membership.Index, c int) {
	members := idx.Members(c)
	vectors := make([][]float64, len(members))
	for i, id := range members {
		vectors[i] = vc.elems[id].Features
	}
	distance.Centroid(vc.centroids[c], vectors)
}

func (vc *Variance) clusterVariance(idx *membership.Index, c int) float64 {
	var s float64
	for _, id := range idx.Members(c) {
		s += distance.SquaredL2(vc.elems[id].Features, vc.centroids[c])
	}
	return s
}

// Objective returns S = Σ_c v_c.
func (vc *Variance) Objective() float64 {
	return sum(vc.v)
}

// Centroid returns the current centroid of cluster c. Exposed for tests
// and for callers that want to inspect the fitted partition.
func (vc *Variance) Centroid(c int) []float64 {
	return vc.centroids[c]
}

// ClusterValue returns the current variance contribution of cluster c.
func (vc *Variance) ClusterValue(c int) float64 {
	return vc.v[c]
}

// ApplySwap implements spec.md §4.3's variance incremental update: shift
// both centroids by the per-feature delta scaled by cluster size, swap the
// elements, then recompute v_a and v_b directly from members (O(|a|·M) and
// O(|b|·M) respectively). All other v_c are unchanged by construction.
func (vc *Variance) ApplySwap(i, j core.LocalID, idx *membership.Index) {
	a := idx.ClusterOf(i)
	b := idx.ClusterOf(j)
	fi := vc.elems[i].Features
	fj := vc.elems[j].Features
	fa := float64(vc.frequencies[a])
	fb := float64(vc.frequencies[b])

	floats.SubTo(vc.delta, fj, fi)
	floats.AddScaled(vc.centroids[a], 1/fa, vc.delta)
	floats.AddScaled(vc.centroids[b], -1/fb, vc.delta)

	idx.Swap(i, j)

	vc.v[a] = vc.clusterVariance(idx, a)
	vc.v[b] = vc.clusterVariance(idx, b)
}
