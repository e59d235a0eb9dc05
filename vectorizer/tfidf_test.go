package vectorizer

import (
	"errors"
	"math"
	"testing"

	"github.com/deanrtaylor1/goml/sparse"
	"github.com/deanrtaylor1/goml/vecmath"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testCounts(t *testing.T) *sparse.Matrix {
	t.Helper()
	v := NewCountVectorizer()
	m, err := v.FitTransform(testDocs())
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	return m
}

func TestTfidfFit(t *testing.T) {
	tr := NewTfidfTransformer()
	tr.Fit(testCounts(t))

	// two documents, so idf is ln(3/2)+1 for terms in one document and
	// ln(3/3)+1 for terms in both, calculated manually
	rare := math.Log(1.5) + 1
	expected := []float64{rare, rare, rare, rare, 1, 1}

	idf := tr.IDF()
	if len(idf) != len(expected) {
		t.Fatalf("len(IDF()) == %v, want %v", len(idf), len(expected))
	}
	for i := range expected {
		if !almostEqual(idf[i], expected[i]) {
			t.Errorf("IDF()[%d] == %v, want %v", i, idf[i], expected[i])
		}
	}
}

func TestTfidfFitUnsmoothed(t *testing.T) {
	tr := NewTfidfTransformer(WithSmoothIDF(false))
	tr.Fit(testCounts(t))

	rare := math.Log(2) + 1
	idf := tr.IDF()
	if !almostEqual(idf[1], rare) {
		t.Errorf("IDF()[1] == %v, want %v", idf[1], rare)
	}
	if !almostEqual(idf[4], 1) {
		t.Errorf("IDF()[4] == %v, want 1", idf[4])
	}
}

func TestTfidfTransformRowsAreUnitLength(t *testing.T) {
	tr := NewTfidfTransformer()
	m, err := tr.FitTransform(testCounts(t))
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	for i := 0; i < m.Rows(); i++ {
		_, vals := m.Row(i)
		norm := vecmath.L2Norm(vals)
		if !almostEqual(norm, 1) {
			t.Errorf("row %d norm == %v, want 1", i, norm)
		}
	}
}

func TestTfidfTransformWeighting(t *testing.T) {
	tr := NewTfidfTransformer(WithNorm(vecmath.NormNone))
	m, err := tr.FitTransform(testCounts(t))
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// second document counts are dog 1, sat 1, the 1
	rare := math.Log(1.5) + 1
	expected := []float64{0, rare, 0, 0, 1, 1}
	dense := m.ToDense()
	for j := range expected {
		if !almostEqual(dense[1][j], expected[j]) {
			t.Errorf("dense[1][%d] == %v, want %v", j, dense[1][j], expected[j])
		}
	}

	// the appears twice in the first document
	if !almostEqual(dense[0][5], 2) {
		t.Errorf("dense[0][5] == %v, want 2", dense[0][5])
	}
}

func TestTfidfNormalizationPreservesRatios(t *testing.T) {
	tr := NewTfidfTransformer()
	m, err := tr.FitTransform(testCounts(t))
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	// the and sat share an idf of 1 in the first document, so their ratio
	// stays the ratio of the raw counts
	dense := m.ToDense()
	if !almostEqual(dense[0][5]/dense[0][4], 2) {
		t.Errorf("ratio == %v, want 2", dense[0][5]/dense[0][4])
	}
}

func TestTfidfSublinear(t *testing.T) {
	tr := NewTfidfTransformer(WithSublinearTF(true), WithNorm(vecmath.NormNone))
	m, err := tr.FitTransform(testCounts(t))
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	dense := m.ToDense()
	if !almostEqual(dense[0][5], 1+math.Log(2)) {
		t.Errorf("dense[0][5] == %v, want %v", dense[0][5], 1+math.Log(2))
	}
	if !almostEqual(dense[0][4], 1) {
		t.Errorf("dense[0][4] == %v, want 1", dense[0][4])
	}
}

func TestTfidfTransformBeforeFit(t *testing.T) {
	tr := NewTfidfTransformer()
	_, err := tr.Transform(testCounts(t))
	if !errors.Is(err, ErrNotFitted) {
		t.Errorf("Transform() error = %v, want ErrNotFitted", err)
	}
}

func TestTfidfDimensionMismatch(t *testing.T) {
	tr := NewTfidfTransformer()
	tr.Fit(testCounts(t))

	builder := sparse.NewBuilder(2)
	builder.AppendRow([]int{0}, []float64{1})
	_, err := tr.Transform(builder.Build())
	if err == nil {
		t.Errorf("Transform() should fail on a column count mismatch")
	}
}

func BenchmarkTfidfFitTransform(b *testing.B) {
	v := NewCountVectorizer(WithMaxFeatures(1000), WithNGramRange(1, 2))
	m, err := v.FitTransform(benchmarkDocs())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := NewTfidfTransformer()
		_, err := tr.FitTransform(m)
		if err != nil {
			b.Fatal(err)
		}
	}
}
