package membership

import (
	"testing"

	"github.com/statunizaga/anticlust/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() (*Index, []core.Element) {
	elems := core.NewElements(6, []int{0, 0, 0, 1, 1, 1}, nil)
	idx := New(elems, 2)
	return idx, elems
}

func TestNewIndexConsistency(t *testing.T) {
	idx, elems := newTestIndex()
	for _, e := range elems {
		assert.Equal(t, e.Cluster, idx.ClusterOf(e.ID))
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, idx.Members(0))
	assert.ElementsMatch(t, []int{3, 4, 5}, idx.Members(1))
}

func TestSwapExchangesClusters(t *testing.T) {
	idx, elems := newTestIndex()
	idx.Swap(0, 3)

	assert.Equal(t, 1, idx.ClusterOf(0))
	assert.Equal(t, 0, idx.ClusterOf(3))
	assert.Equal(t, 1, elems[0].Cluster)
	assert.Equal(t, 0, elems[3].Cluster)

	assert.ElementsMatch(t, []int{3, 1, 2}, idx.Members(0))
	assert.ElementsMatch(t, []int{0, 4, 5}, idx.Members(1))
}

func TestSwapSelfInverse(t *testing.T) {
	idx, elems := newTestIndex()

	before0 := append([]int(nil), idx.Members(0)...)
	before1 := append([]int(nil), idx.Members(1)...)
	beforeClusters := make([]int, len(elems))
	for i, e := range elems {
		beforeClusters[i] = e.Cluster
	}

	idx.Swap(1, 4)
	idx.Swap(1, 4)

	require.Equal(t, before0, idx.Members(0))
	require.Equal(t, before1, idx.Members(1))
	for i, e := range elems {
		assert.Equal(t, beforeClusters[i], e.Cluster)
	}
}

func TestSwapPreservesIdentity(t *testing.T) {
	idx, elems := newTestIndex()
	beforeIDs := make([]core.LocalID, len(elems))
	for i, e := range elems {
		beforeIDs[i] = e.ID
	}

	idx.Swap(2, 5)

	// Swap must never mutate an element's ID: it is stable identity,
	// exchanged only via the handle table (spec.md §9's suspected-bug note).
	for i, e := range elems {
		assert.Equal(t, beforeIDs[i], e.ID)
	}

	// Every handle still addresses the element with the matching id, for
	// all n ids, not just the two just swapped.
	for id := range elems {
		localID := core.LocalID(id)
		cluster := idx.ClusterOf(localID)
		assert.Contains(t, idx.Members(cluster), localID)
		assert.Equal(t, cluster, elems[localID].Cluster)
	}
}

func TestSwapRepeatedArbitraryPairs(t *testing.T) {
	idx, _ := newTestIndex()
	pairs := [][2]int{{0, 3}, {1, 4}, {2, 5}, {0, 4}}
	for _, p := range pairs {
		before0 := append([]int(nil), idx.Members(0)...)
		before1 := append([]int(nil), idx.Members(1)...)
		idx.Swap(p[0], p[1])
		idx.Swap(p[0], p[1])
		assert.ElementsMatch(t, before0, idx.Members(0))
		assert.ElementsMatch(t, before1, idx.Members(1))
	}
}
