// Package membership implements the cluster membership index of spec.md
// §4.2: K collections of membership handles supporting O(|cluster|)
// traversal and O(1) swap of two elements between clusters.
//
// This uses the flat-arena alternative spec.md §9 explicitly endorses over
// the reference C implementation's linked list: each cluster is a
// contiguous []core.LocalID, and a parallel handle table maps an element id
// to its (cluster, position) slot. Swap exchanges two slots and is its own
// inverse.
package membership

import "github.com/statunizaga/anticlust/internal/core"

type handle struct {
	cluster int
	pos     int
}

// Index is the cluster membership index. It holds back-references to
// Elements (by LocalID) -- it does not own them.
type Index struct {
	elems   []core.Element // shared with the point store; Cluster field is authoritative
	members [][]core.LocalID
	handle  []handle
}

// New builds an Index from elems (whose Cluster fields must already be a
// valid initial assignment) and k, the number of clusters.
func New(elems []core.Element, k int) *Index {
	idx := &Index{
		elems:   elems,
		members: make([][]core.LocalID, k),
		handle:  make([]handle, len(elems)),
	}
	for _, e := range elems {
		idx.members[e.Cluster] = append(idx.members[e.Cluster], e.ID)
	}
	for c, ids := range idx.members {
		for pos, id := range ids {
			idx.handle[id] = handle{cluster: c, pos: pos}
		}
	}
	return idx
}

// Members returns the ids currently in cluster c. The returned slice is
// owned by the Index and must not be mutated by the caller; it is
// invalidated by the next Swap involving cluster c.
func (idx *Index) Members(c int) []core.LocalID {
	return idx.members[c]
}

// ClusterOf returns the cluster currently containing id.
func (idx *Index) ClusterOf(id core.LocalID) int {
	return idx.handle[id].cluster
}

// Swap exchanges the cluster affiliation of elements i and j in O(1),
// keeping the handle table and each element's Cluster field consistent.
// It is self-inverse: Swap(i, j) followed by Swap(i, j) restores the
// pre-state of both elements' Cluster fields and the membership index
// bit-for-bit (spec.md §4.2, §8 "Swap reversibility").
//
// Swap never reads or writes an element's ID field -- ids are stable
// identity, never exchanged (spec.md §9's suspected-bug note on the
// reference implementation).
func (idx *Index) Swap(i, j core.LocalID) {
	hi := idx.handle[i]
	hj := idx.handle[j]

	idx.members[hi.cluster][hi.pos] = j
	idx.members[hj.cluster][hj.pos] = i

	idx.handle[i] = handle{cluster: hj.cluster, pos: hj.pos}
	idx.handle[j] = handle{cluster: hi.cluster, pos: hi.pos}

	idx.elems[i].Cluster, idx.elems[j].Cluster = idx.elems[j].Cluster, idx.elems[i].Cluster
}
