package vecmath

import "math"

// Norm describes the types of vector normalization that are supported.
type Norm int

const (
	NormNone Norm = iota
	NormL1
	NormL2
)

// Distance describes the distance functions that are supported.
type Distance int

const (
	Euclidean Distance = iota
	Manhattan
)

// L2Norm produces the L2 norm of p
func L2Norm(p []float64) float64 {
	var norm float64
	for _, x := range p {
		norm += x * x
	}
	return math.Sqrt(norm)
}

// L1Norm produces the L1 norm of p
func L1Norm(p []float64) float64 {
	var norm float64
	for _, x := range p {
		norm += math.Abs(x)
	}
	return norm
}

// Normalize scales p in place by the requested norm. Vectors with a zero norm
// are left untouched.
func Normalize(p []float64, normType Norm) {
	var norm float64
	switch normType {
	case NormL1:
		norm = L1Norm(p)
	case NormL2:
		norm = L2Norm(p)
	default:
		return
	}

	if norm == 0 {
		return
	}
	for i := range p {
		p[i] /= norm
	}
}

// EuclideanDistance calculates the euclidean distance between two points.
// Both points must have the same length.
func EuclideanDistance(p, q []float64) float64 {
	var distance float64
	for i := range p {
		d := q[i] - p[i]
		distance += d * d
	}

	if distance == 0 {
		return 0
	}
	return math.Sqrt(distance)
}

// ManhattanDistance calculates the manhattan distance between two points.
// Both points must have the same length.
func ManhattanDistance(p, q []float64) float64 {
	var distance float64
	for i := range p {
		distance += math.Abs(p[i] - q[i])
	}

	return distance
}

// CosineSimilarity calculates the cosine of the angle between two points.
// Both points must have the same length.
func CosineSimilarity(p, q []float64) float64 {
	var dot, normP, normQ float64
	for i := range p {
		dot += p[i] * q[i]
		normP += p[i] * p[i]
		normQ += q[i] * q[i]
	}

	if normP == 0 || normQ == 0 {
		return 0
	}
	return dot / (math.Sqrt(normP) * math.Sqrt(normQ))
}
