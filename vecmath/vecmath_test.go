package vecmath

import (
	"math"
	"reflect"
	"testing"
)

func TestL2Norm(t *testing.T) {
	p := []float64{2.0, 2.0, 2.0}

	if L2Norm(p) != math.Sqrt(12) {
		t.Errorf("L2Norm() == %v, want %v", L2Norm(p), math.Sqrt(12))
	}
}

func TestL1Norm(t *testing.T) {
	p := []float64{2.0, -2.0, 2.0}

	if L1Norm(p) != 6.0 {
		t.Errorf("L1Norm() == %v, want 6", L1Norm(p))
	}
}

func TestNormalize(t *testing.T) {
	p := []float64{2.0, 2.0, 2.0}
	Normalize(p, NormL2)

	want := 2.0 / math.Sqrt(12)
	expected := []float64{want, want, want}
	if !reflect.DeepEqual(p, expected) {
		t.Errorf("Normalize() == %v, want %v", p, expected)
	}

	p = []float64{3.0, -3.0}
	Normalize(p, NormL1)

	expected = []float64{0.5, -0.5}
	if !reflect.DeepEqual(p, expected) {
		t.Errorf("Normalize() == %v, want %v", p, expected)
	}

	// A zero vector has no direction and must come back unchanged
	p = []float64{0.0, 0.0}
	Normalize(p, NormL2)

	expected = []float64{0.0, 0.0}
	if !reflect.DeepEqual(p, expected) {
		t.Errorf("Normalize() == %v, want %v", p, expected)
	}

	p = []float64{4.0, 5.0}
	Normalize(p, NormNone)

	expected = []float64{4.0, 5.0}
	if !reflect.DeepEqual(p, expected) {
		t.Errorf("Normalize() == %v, want %v", p, expected)
	}
}

func TestEuclideanDistance(t *testing.T) {
	testCases := []struct {
		name     string
		p        []float64
		q        []float64
		expected float64
	}{
		{
			name:     "Pythagorean triple",
			p:        []float64{5.0, 6.0},
			q:        []float64{-7.0, 11.0},
			expected: 13.0,
		},
		{
			name:     "Unit cube diagonal",
			p:        []float64{0.0, 0.0, 0.0},
			q:        []float64{1.0, 1.0, 1.0},
			expected: math.Sqrt(3),
		},
		{
			name:     "Identical points",
			p:        []float64{1.0, 2.0},
			q:        []float64{1.0, 2.0},
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := EuclideanDistance(tc.p, tc.q)
			if result != tc.expected {
				t.Errorf("EuclideanDistance() == %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestManhattanDistance(t *testing.T) {
	testCases := []struct {
		name     string
		p        []float64
		q        []float64
		expected float64
	}{
		{
			name:     "Basic test",
			p:        []float64{0.0, 0.0},
			q:        []float64{1.0, 1.0},
			expected: 2.0,
		},
		{
			name:     "Negative coordinates",
			p:        []float64{0.0, 0.0},
			q:        []float64{-1.0, 1.0},
			expected: 2.0,
		},
		{
			name:     "Three dimensions",
			p:        []float64{0.0, 0.0, 0.0},
			q:        []float64{1.0, 1.0, 1.0},
			expected: 3.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ManhattanDistance(tc.p, tc.q)
			if result != tc.expected {
				t.Errorf("ManhattanDistance() == %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	result := CosineSimilarity([]float64{1.0, 0.0}, []float64{0.0, 1.0})
	if result != 0 {
		t.Errorf("CosineSimilarity() == %v, want 0", result)
	}

	result = CosineSimilarity([]float64{1.0, 2.0}, []float64{2.0, 4.0})
	if math.Abs(result-1.0) > 1e-12 {
		t.Errorf("CosineSimilarity() == %v, want 1", result)
	}

	result = CosineSimilarity([]float64{0.0, 0.0}, []float64{1.0, 1.0})
	if result != 0 {
		t.Errorf("CosineSimilarity() == %v, want 0 for a zero vector", result)
	}
}

func BenchmarkEuclideanDistance(b *testing.B) {
	p := make([]float64, 1024)
	q := make([]float64, 1024)
	for i := range p {
		p[i] = float64(i)
		q[i] = float64(1024 - i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EuclideanDistance(p, q)
	}
}

func BenchmarkManhattanDistance(b *testing.B) {
	p := make([]float64, 1024)
	q := make([]float64, 1024)
	for i := range p {
		p[i] = float64(i)
		q[i] = float64(1024 - i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ManhattanDistance(p, q)
	}
}
