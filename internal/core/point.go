// Package core owns the per-element records the rest of the optimizer
// reads and mutates: identity, current cluster, category, and (for the
// variance variant) a copy of the element's feature vector.
package core

// Element is one anticlustered data point.
//
// Ownership: the point store exclusively owns Element records.
// internal/membership holds back-references to them (by LocalID), never a
// second copy.
type Element struct {
	ID       LocalID
	Cluster  int
	Category int
	Features []float64 // nil for the diversity variant
}

// NewElements builds the Element collection for N data points from their
// initial cluster assignment and, optionally, their category labels.
// categories may be nil, in which case every element gets Category 0 --
// the degenerate "no categorical constraints" case of spec.md §4.4.
func NewElements(n int, clusters, categories []int) []Element {
	elems := make([]Element, n)
	for i := 0; i < n; i++ {
		elems[i] = Element{
			ID:      i,
			Cluster: clusters[i],
		}
		if categories != nil {
			elems[i].Category = categories[i]
		}
	}
	return elems
}

// SetFeatures copies the variance variant's column-major data
// (data[j*n+i] is feature j of element i, spec.md §4.1) into each
// element's Features slice. elems must already have length n.
func SetFeatures(elems []Element, data []float64, n, m int) {
	for i := 0; i < n; i++ {
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			row[j] = data[j*n+i]
		}
		elems[i].Features = row
	}
}
