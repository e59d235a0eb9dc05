package vectorizer

import (
	"fmt"
	"math"

	"github.com/deanrtaylor1/goml/sparse"
	"github.com/deanrtaylor1/goml/vecmath"
)

// TfidfTransformer rescales a count matrix so that terms appearing in most
// documents stop dominating: each count is multiplied by the inverse document
// frequency of its term and each row is normalized.
type TfidfTransformer struct {
	smoothIDF   bool
	sublinearTF bool
	norm        vecmath.Norm

	idf []float64
}

// TfidfOption is a functional option for the transformer
type TfidfOption func(*TfidfTransformer)

// WithSmoothIDF toggles the +1 smoothing of document frequencies
func WithSmoothIDF(smooth bool) TfidfOption {
	return func(t *TfidfTransformer) {
		t.smoothIDF = smooth
	}
}

// WithSublinearTF replaces each count with 1 + ln(count)
func WithSublinearTF(sublinear bool) TfidfOption {
	return func(t *TfidfTransformer) {
		t.sublinearTF = sublinear
	}
}

// WithNorm sets the row normalization applied after weighting
func WithNorm(norm vecmath.Norm) TfidfOption {
	return func(t *TfidfTransformer) {
		t.norm = norm
	}
}

func NewTfidfTransformer(opts ...TfidfOption) *TfidfTransformer {
	t := &TfidfTransformer{
		smoothIDF: true,
		norm:      vecmath.NormL2,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Fit learns the inverse document frequency of every column:
// idf(t) = ln((1+n)/(1+df(t))) + 1 when smoothed, ln(n/df(t)) + 1 otherwise,
// where n is the number of rows and df(t) the number of rows with a nonzero
// entry in the column.
func (t *TfidfTransformer) Fit(m *sparse.Matrix) {
	rows := m.Rows()

	df := make([]int, m.Cols)
	for i := 0; i < rows; i++ {
		cols, vals := m.Row(i)
		for k, col := range cols {
			if vals[k] != 0 {
				df[col]++
			}
		}
	}

	idf := make([]float64, m.Cols)
	for j, d := range df {
		if t.smoothIDF {
			idf[j] = math.Log(float64(1+rows)/float64(1+d)) + 1
		} else {
			idf[j] = math.Log(float64(rows)/float64(d)) + 1
		}
	}

	t.idf = idf
}

// Transform applies the fitted idf weights and row normalization. The matrix
// must have the same number of columns the transformer was fitted on.
func (t *TfidfTransformer) Transform(m *sparse.Matrix) (*sparse.Matrix, error) {
	if t.idf == nil {
		return nil, ErrNotFitted
	}
	if m.Cols != len(t.idf) {
		return nil, fmt.Errorf("vectorizer: matrix has %d columns, transformer was fitted on %d", m.Cols, len(t.idf))
	}

	builder := sparse.NewBuilder(m.Cols)
	for i := 0; i < m.Rows(); i++ {
		cols, vals := m.Row(i)

		weighted := make([]float64, len(vals))
		for k, val := range vals {
			if t.sublinearTF && val > 0 {
				val = 1 + math.Log(val)
			}
			weighted[k] = val * t.idf[cols[k]]
		}

		vecmath.Normalize(weighted, t.norm)
		builder.AppendRow(cols, weighted)
	}

	return builder.Build(), nil
}

// FitTransform fits the transformer and transforms the matrix in one step
func (t *TfidfTransformer) FitTransform(m *sparse.Matrix) (*sparse.Matrix, error) {
	t.Fit(m)
	return t.Transform(m)
}

// IDF returns the fitted inverse document frequency of each column
func (t *TfidfTransformer) IDF() []float64 {
	return t.idf
}
