package objective

import (
	"github.com/statunizaga/anticlust/distance"
	"github.com/statunizaga/anticlust/internal/core"
	"github.com/statunizaga/anticlust/internal/membership"
)

// Diversity is the centroid/objective cache for the diversity objective: a
// K-vector of per-cluster pairwise-distance sums, computed from a
// precomputed N×N distance matrix (spec.md §2.3, §4.3 "Diversity variant").
type Diversity struct {
	dist *distance.Matrix
	v    []float64
}

// NewDiversity builds the cache from the current membership of idx,
// computing each v_c as Σ_{e,e'∈c, e≠e'} D[e,e'], counted once per
// unordered pair.
func NewDiversity(dist *distance.Matrix, idx *membership.Index, k int) *Diversity {
	dc := &Diversity{dist: dist, v: make([]float64, k)}
	for c := 0; c < k; c++ {
		dc.v[c] = dc.withinClusterSum(idx, c)
	}
	return dc
}

func (dc *Diversity) withinClusterSum(idx *membership.Index, c int) float64 {
	members := idx.Members(c)
	var s float64
	for x := 0; x < len(members); x++ {
		for y := x + 1; y < len(members); y++ {
			s += dc.dist.At(members[x], members[y])
		}
	}
	return s
}

// distancesToOthers sums D[id, x] over current members of cluster c other
// than id itself. The self-distance D[id,id] is zero by construction of
// distance.Matrix and is never summed because id is excluded.
func (dc *Diversity) distancesToOthers(idx *membership.Index, c int, id core.LocalID) float64 {
	var s float64
	for _, x := range idx.Members(c) {
		if x == id {
			continue
		}
		s += dc.dist.At(id, x)
	}
	return s
}

// Objective returns S = Σ_c v_c.
func (dc *Diversity) Objective() float64 {
	return sum(dc.v)
}

// ClusterValue returns the current within-cluster distance sum of cluster c.
func (dc *Diversity) ClusterValue(c int) float64 {
	return dc.v[c]
}

// ApplySwap implements spec.md §4.3's diversity incremental update:
// subtract each element's contribution to its current cluster, swap, then
// add each element's contribution to its new cluster. The cross-pair
// D[i,j] is never summed because at each phase the element being added is
// not yet counted as a member of the cluster whose sum is being updated.
func (dc *Diversity) ApplySwap(i, j core.LocalID, idx *membership.Index) {
	a := idx.ClusterOf(i)
	b := idx.ClusterOf(j)

	dc.v[a] -= dc.distancesToOthers(idx, a, i)
	dc.v[b] -= dc.distancesToOthers(idx, b, j)

	idx.Swap(i, j)

	dc.v[a] += dc.distancesToOthers(idx, a, j)
	dc.v[b] += dc.distancesToOthers(idx, b, i)
}
