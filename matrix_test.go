package clusterest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix([][]int16{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, int16(6), m.At(1, 2))
	assert.Equal(t, Point{4, 5, 6}, m.Row(1))
	assert.Equal(t, [][]int16{{1, 2, 3}, {4, 5, 6}}, m.ToSlices())
}

func TestNewMatrix_CopiesInput(t *testing.T) {
	rows := [][]int16{{1, 2}}
	m, err := NewMatrix(rows)
	require.NoError(t, err)

	rows[0][0] = 100
	assert.Equal(t, int16(1), m.At(0, 0))
}

func TestNewMatrix_Empty(t *testing.T) {
	m, err := NewMatrix(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Empty(t, m.ToSlices())
}

func TestNewMatrix_RaggedRows(t *testing.T) {
	_, err := NewMatrix([][]int16{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrRaggedRows)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNewMatrixFromFlat(t *testing.T) {
	m, err := NewMatrixFromFlat([]int16{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, Point{5, 6}, m.Row(2))

	_, err = NewMatrixFromFlat([]int16{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrShape)

	_, err = NewMatrixFromFlat(nil, -1, 0)
	require.ErrorIs(t, err, ErrShape)
}

func TestMatrix_RowCannotGrowIntoNextRow(t *testing.T) {
	m, err := NewMatrix([][]int16{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row := m.Row(0)
	_ = append(row, 99)
	assert.Equal(t, int16(3), m.At(1, 0))
}

func TestMatrix_ToSlicesIsACopy(t *testing.T) {
	m, err := NewMatrix([][]int16{{1, 2}})
	require.NoError(t, err)

	s := m.ToSlices()
	s[0][0] = 7
	assert.Equal(t, int16(1), m.At(0, 0))
}

func TestMatrix_DenseRoundTrip(t *testing.T) {
	m, err := NewMatrix([][]int16{{math.MinInt16, 0}, {-1, math.MaxInt16}})
	require.NoError(t, err)

	d := m.Dense()
	require.NotNil(t, d)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.True(t, floats.Equal([]float64{math.MinInt16, 0, -1, math.MaxInt16}, d.RawMatrix().Data))

	back, err := FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, m.ToSlices(), back.ToSlices())
}

func TestMatrix_DenseEmpty(t *testing.T) {
	assert.Nil(t, Matrix{}.Dense())
}

func TestFromDense_Rejects(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"fraction", 1.5},
		{"too large", 40000},
		{"too small", -40000},
		{"NaN", math.NaN()},
		{"Inf", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDense(mat.NewDense(1, 2, []float64{0, tt.v}))
			require.ErrorIs(t, err, ErrNotInt16)
		})
	}
}

func TestFromDense_Transposed(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := FromDense(d.T())
	require.NoError(t, err)
	assert.Equal(t, [][]int16{{1, 4}, {2, 5}, {3, 6}}, m.ToSlices())
}

func TestEstimate_FromDenseInput(t *testing.T) {
	d := mat.NewDense(3, 2, []float64{0, 0, 1, 0, 50, 50})
	m, err := FromDense(d)
	require.NoError(t, err)

	centers, err := Estimate(m, 2, 0.5, 0.5)
	require.NoError(t, err)
	out := centers.Dense()
	require.NotNil(t, out)
	_, c := out.Dims()
	assert.Equal(t, 2, c)
}
