// Package distance provides the vector and matrix distance primitives used
// by the variance and diversity objective caches: squared Euclidean
// distance between feature vectors for the variance variant, and
// reconstruction of a symmetric N×N distance matrix from the diversity
// variant's column-major input.
package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

// Centroid writes the arithmetic mean of vectors (each of length dim) into
// dst, which must already have length dim. It is used to (re)compute a
// cluster centroid directly from its members.
func Centroid(dst []float64, vectors [][]float64) {
	for i := range dst {
		dst[i] = 0
	}
	if len(vectors) == 0 {
		return
	}
	for _, v := range vectors {
		floats.Add(dst, v)
	}
	floats.Scale(1/float64(len(vectors)), dst)
}

// Metric identifies which distance function a caller wants applied to
// feature vectors. The diversity variant never uses a Metric: its distances
// are supplied directly as a precomputed matrix.
type Metric int

const (
	// MetricSquaredL2 is the only metric the variance objective supports
	// (spec.md §3: v_c = Σ ‖e.features − centroid[c]‖²).
	MetricSquaredL2 Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation between feature vectors.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	default:
		return nil, fmt.Errorf("distance: unsupported metric: %v", m)
	}
}

// Matrix is a symmetric N×N distance matrix with a zero diagonal, stored
// row-major for cache-friendly row scans (each cluster objective sums one
// row at a time against a handful of other rows).
type Matrix struct {
	n    int
	data []float64
}

// NewMatrixFromColumnMajor reconstructs a Matrix from data laid out
// column-major of length n*n (element (i, j) at data[j*n+i]), exactly the
// wire format spec.md §6 specifies for the diversity entry point's data
// argument. It does not validate symmetry or a zero diagonal; the caller
// is responsible for supplying a well-formed distance matrix (spec.md §7).
func NewMatrixFromColumnMajor(data []float64, n int) *Matrix {
	m := &Matrix{n: n, data: make([]float64, n*n)}
	for j := 0; j < n; j++ {
		col := data[j*n : j*n+n]
		for i := 0; i < n; i++ {
			m.data[i*n+j] = col[i]
		}
	}
	return m
}

// At returns the distance between elements i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// N returns the dimension of the matrix.
func (m *Matrix) N() int {
	return m.n
}
