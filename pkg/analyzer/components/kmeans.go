package components

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// kmeans partitions the rows of x into k clusters with Lloyd iterations
// over a k-means++ seeding. All randomness flows through rng. Returns a
// label per row and the k cluster centers.
func kmeans(x *mat.Dense, k, maxIter int, rng *rand.Rand) ([]int, *mat.Dense, error) {
	n, _ := x.Dims()
	if k <= 0 {
		return nil, nil, fmt.Errorf("kmeans: cluster count must be positive, got %d", k)
	}
	if k > n {
		return nil, nil, fmt.Errorf("kmeans: %d clusters requested for %d samples", k, n)
	}

	centers := seedCenters(x, k, rng)
	labels := make([]int, n)
	counts := make([]int, k)

	for iter := 0; iter < maxIter; iter++ {
		// Assignment step. Ties go to the lowest cluster index.
		changed := false
		for i := 0; i < n; i++ {
			best, bestDist := 0, distSq(x.RawRowView(i), centers.RawRowView(0))
			for c := 1; c < k; c++ {
				if dist := distSq(x.RawRowView(i), centers.RawRowView(c)); dist < bestDist {
					best, bestDist = c, dist
				}
			}
			if labels[i] != best {
				changed = true
				labels[i] = best
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Update step.
		centers.Zero()
		for c := range counts {
			counts[c] = 0
		}
		for i := 0; i < n; i++ {
			floats.Add(centers.RawRowView(labels[i]), x.RawRowView(i))
			counts[labels[i]]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Re-seed an empty cluster with the point farthest
				// from its current center.
				far, farDist := 0, -1.0
				for i := 0; i < n; i++ {
					if dist := distSq(x.RawRowView(i), centers.RawRowView(labels[i])); dist > farDist {
						far, farDist = i, dist
					}
				}
				copy(centers.RawRowView(c), x.RawRowView(far))
				labels[far] = c
				counts[c] = 1
				continue
			}
			floats.Scale(1/float64(counts[c]), centers.RawRowView(c))
		}
	}
	return labels, centers, nil
}

// seedCenters picks k initial centers with k-means++: the first uniformly,
// the rest proportional to squared distance from the nearest chosen center.
func seedCenters(x *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, d := x.Dims()
	centers := mat.NewDense(k, d, nil)
	copy(centers.RawRowView(0), x.RawRowView(rng.Intn(n)))

	dists := make([]float64, n)
	for i := 0; i < n; i++ {
		dists[i] = distSq(x.RawRowView(i), centers.RawRowView(0))
	}
	for c := 1; c < k; c++ {
		total := floats.Sum(dists)
		var pick int
		if total == 0 {
			pick = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			var cum float64
			for i := 0; i < n; i++ {
				cum += dists[i]
				if cum >= target {
					pick = i
					break
				}
			}
		}
		copy(centers.RawRowView(c), x.RawRowView(pick))
		for i := 0; i < n; i++ {
			if dist := distSq(x.RawRowView(i), centers.RawRowView(c)); dist < dists[i] {
				dists[i] = dist
			}
		}
	}
	return centers
}

func distSq(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
