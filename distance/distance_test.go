package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCentroid(t *testing.T) {
	dst := make([]float64, 2)
	Centroid(dst, [][]float64{{0, 0}, {2, 4}})
	assert.InDeltaSlice(t, []float64{1, 2}, dst, 1e-9)

	Centroid(dst, nil)
	assert.Equal(t, []float64{0, 0}, dst)
}

func TestProvider(t *testing.T) {
	f, err := Provider(MetricSquaredL2)
	assert.NoError(t, err)
	assert.InDelta(t, 27.0, f([]float64{1, 2, 3}, []float64{4, 5, 6}), 1e-9)

	_, err = Provider(Metric(99))
	assert.Error(t, err)
}

func TestMatrixFromColumnMajor(t *testing.T) {
	// Points on a line: 0, 10, 11, 21 -> symmetric distance matrix.
	// Column-major layout: data[j*n+i] = distance(i, j).
	n := 4
	points := []float64{0, 10, 11, 21}
	data := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			d := points[i] - points[j]
			if d < 0 {
				d = -d
			}
			data[j*n+i] = d
		}
	}

	m := NewMatrixFromColumnMajor(data, n)
	assert.Equal(t, n, m.N())
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, 10.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 2))
	assert.Equal(t, 21.0, m.At(0, 3))
	// Symmetry.
	assert.Equal(t, m.At(2, 3), m.At(3, 2))
}
