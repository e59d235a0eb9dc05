package knn

import (
	"runtime"
	"sort"
	"sync"

	"github.com/deanrtaylor1/goml/vecmath"
)

// KNN holds the training data for a k-nearest neighbors classifier. Always
// create one with NewKNN so the training rows are normalized up front.
type KNN struct {
	K         int
	X         [][]float64
	Y         []int
	NumLabels int
	Distance  vecmath.Distance
	Norm      vecmath.Norm
}

// Point is the distance from a query to one training row
type Point struct {
	Class    int
	Distance float64
}

// NewKNN creates a classifier over the training rows. The rows are
// normalized in place when a norm is set.
func NewKNN(k int, x [][]float64, y []int, distance vecmath.Distance, norm vecmath.Norm) *KNN {
	knn := &KNN{
		K:         k,
		X:         x,
		Y:         y,
		NumLabels: NumLabels(y),
		Distance:  distance,
		Norm:      norm,
	}

	for _, row := range knn.X {
		vecmath.Normalize(row, knn.Norm)
	}

	return knn
}

// NumLabels returns the number of distinct class labels
func NumLabels(y []int) int {
	set := make(map[int]bool)
	for _, label := range y {
		set[label] = true
	}
	return len(set)
}

// ConvertToFloat64 converts integer feature rows to float64 rows
func ConvertToFloat64(rows [][]int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		converted := make([]float64, len(row))
		for j, val := range row {
			converted[j] = float64(val)
		}
		out[i] = converted
	}
	return out
}

// CalculateDistances computes the distance from the query to every training
// row. The rows are split into one chunk per CPU and measured concurrently.
// The query must have the same dimensions as the training rows.
func (knn *KNN) CalculateDistances(query []float64) []Point {
	points := make([]Point, len(knn.X))

	distanceFn := vecmath.EuclideanDistance
	if knn.Distance == vecmath.Manhattan {
		distanceFn = vecmath.ManhattanDistance
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(knn.X) {
		numWorkers = len(knn.X)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	chunkSize := (len(knn.X) + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < len(knn.X); start += chunkSize {
		end := start + chunkSize
		if end > len(knn.X) {
			end = len(knn.X)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				points[i] = Point{
					Class:    knn.Y[i],
					Distance: distanceFn(query, knn.X[i]),
				}
			}
		}(start, end)
	}
	wg.Wait()

	return points
}

// Predict returns the majority class among the k nearest training rows. The
// query is normalized with the same norm as the training data before the
// distances are measured. Vote ties go to the lowest class label.
func (knn *KNN) Predict(query []float64) int {
	normalized := make([]float64, len(query))
	copy(normalized, query)
	vecmath.Normalize(normalized, knn.Norm)

	points := knn.CalculateDistances(normalized)
	sort.Slice(points, func(i, j int) bool {
		return points[i].Distance < points[j].Distance
	})

	k := knn.K
	if k > len(points) {
		k = len(points)
	}

	votes := make(map[int]int)
	for _, point := range points[:k] {
		votes[point.Class]++
	}

	best, bestCount := 0, -1
	for class, count := range votes {
		if count > bestCount || (count == bestCount && class < best) {
			best = class
			bestCount = count
		}
	}

	return best
}
