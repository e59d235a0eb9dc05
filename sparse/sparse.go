package sparse

// Matrix is a row compressed sparse matrix of float64 values. Row i owns the
// range [RowPtr[i], RowPtr[i+1]) of ColIdx and Data, with column indices
// sorted ascending within each row.
type Matrix struct {
	RowPtr []int
	ColIdx []int
	Data   []float64
	Cols   int
}

// Builder assembles a Matrix one row at a time.
type Builder struct {
	m *Matrix
}

// NewBuilder creates a builder for a matrix with the given number of columns
func NewBuilder(cols int) *Builder {
	return &Builder{
		m: &Matrix{
			RowPtr: []int{0},
			Cols:   cols,
		},
	}
}

// AppendRow adds the next row to the matrix. Column indices must be sorted
// ascending and vals must be the same length as cols.
func (b *Builder) AppendRow(cols []int, vals []float64) {
	b.m.ColIdx = append(b.m.ColIdx, cols...)
	b.m.Data = append(b.m.Data, vals...)
	b.m.RowPtr = append(b.m.RowPtr, len(b.m.ColIdx))
}

// Build returns the assembled matrix
func (b *Builder) Build() *Matrix {
	return b.m
}

// Rows returns the number of rows in the matrix
func (m *Matrix) Rows() int {
	return len(m.RowPtr) - 1
}

// Dims returns the number of rows and columns in the matrix
func (m *Matrix) Dims() (int, int) {
	return m.Rows(), m.Cols
}

// Nnz returns the number of non-zero entries
func (m *Matrix) Nnz() int {
	return len(m.Data)
}

// Row returns the column indices and values of row i. The returned slices are
// views into the matrix, not copies.
func (m *Matrix) Row(i int) ([]int, []float64) {
	start, end := m.RowPtr[i], m.RowPtr[i+1]
	return m.ColIdx[start:end], m.Data[start:end]
}

// At returns the value at row i, column j
func (m *Matrix) At(i, j int) float64 {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
		if c > j {
			break
		}
	}
	return 0
}

// ToDense converts the matrix to dense rows
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.Rows())
	for i := range dense {
		dense[i] = make([]float64, m.Cols)
		cols, vals := m.Row(i)
		for k, c := range cols {
			dense[i][c] = vals[k]
		}
	}
	return dense
}
