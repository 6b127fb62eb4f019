package clusterest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point is a fixed-length sequence of 16-bit integer coordinates.
type Point []int16

// Matrix is a row-major rows x cols matrix of int16 values. Each row is one
// Point. The zero value is an empty 0 x 0 matrix.
type Matrix struct {
	data []int16
	rows int
	cols int
}

// NewMatrix copies rows into a Matrix. All rows must have the same length.
func NewMatrix(rows [][]int16) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	data := make([]int16, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRaggedRows, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix{data: data, rows: len(rows), cols: cols}, nil
}

// NewMatrixFromFlat wraps row-major data of length rows*cols. The slice is
// not copied.
func NewMatrixFromFlat(data []int16, rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: len=%d rows=%d cols=%d", ErrShape, len(data), rows, cols)
	}
	return Matrix{data: data, rows: rows, cols: cols}, nil
}

// matrixFromPoints assembles points that are known to share dimension cols.
func matrixFromPoints(points []Point, cols int) Matrix {
	data := make([]int16, 0, len(points)*cols)
	for _, p := range points {
		if len(p) != cols {
			panic(fmt.Sprintf("clusterest: point dimension %d does not match %d", len(p), cols))
		}
		data = append(data, p...)
	}
	return Matrix{data: data, rows: len(points), cols: cols}
}

// Rows returns the number of rows (points).
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (the point dimension).
func (m Matrix) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) int16 { return m.data[i*m.cols+j] }

// Row returns row i as a Point. The Point aliases the matrix storage and must
// not be modified.
func (m Matrix) Row(i int) Point {
	return Point(m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols])
}

// ToSlices returns a copy of the matrix as a slice of rows.
func (m Matrix) ToSlices() [][]int16 {
	out := make([][]int16, m.rows)
	for i := range out {
		out[i] = append([]int16(nil), m.Row(i)...)
	}
	return out
}

// Dense converts the matrix to a gonum dense matrix. An empty matrix returns
// nil since gonum does not allow zero-sized dense matrices.
func (m Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense converts a gonum matrix to a Matrix. Every element must be an
// integer in the int16 range.
func FromDense(a mat.Matrix) (Matrix, error) {
	r, c := a.Dims()
	data := make([]int16, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if v != math.Trunc(v) || v < math.MinInt16 || v > math.MaxInt16 {
				return Matrix{}, fmt.Errorf("%w: element (%d, %d) = %g", ErrNotInt16, i, j, v)
			}
			data[i*c+j] = int16(v)
		}
	}
	return Matrix{data: data, rows: r, cols: c}, nil
}
