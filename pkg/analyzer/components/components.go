// Package components groups file paths into logical components by
// clustering the vocabulary of their directory names.
package components

import (
	"math/rand"
	"path"
	"sort"
	"strings"
	"time"
)

// Defaults for the clusterer.
const (
	DefaultClusterCount = 8
	DefaultMaxIter      = 100

	// nameWeightThreshold is the minimum center weight a feature needs
	// to contribute to a cluster's name.
	nameWeightThreshold = 0.4
)

// Analyzer infers components from path strings. Clustering uses randomized
// initialization; inject a seeded source for reproducible output.
type Analyzer struct {
	stopWords map[string]struct{}
	nClusters int
	maxIter   int
	rng       *rand.Rand
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithStopWords excludes common or noisy tokens, such as the project's own
// root package name, from the vocabulary.
func WithStopWords(words ...string) Option {
	return func(a *Analyzer) {
		for _, w := range words {
			a.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithClusterCount sets the number of clusters.
func WithClusterCount(n int) Option {
	return func(a *Analyzer) {
		a.nClusters = n
	}
}

// WithRand sets the random source used for cluster initialization.
func WithRand(rng *rand.Rand) Option {
	return func(a *Analyzer) {
		a.rng = rng
	}
}

// WithSeed is shorthand for WithRand over a fixed seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New creates a new component analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		stopWords: make(map[string]struct{}),
		nClusters: DefaultClusterCount,
		maxIter:   DefaultMaxIter,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Analyze vectorizes the directory portion of each path with tf-idf,
// clusters the vectors and names each cluster from its heaviest features.
// Paths whose cluster has no feature above the naming threshold get an
// empty component. A cluster count exceeding the number of paths is an
// error from the clustering step, not masked here.
func (a *Analyzer) Analyze(paths []string) (*Analysis, error) {
	dirs := make([]string, len(paths))
	for i, p := range paths {
		dirs[i] = dirname(p)
	}

	vec := newVectorizer(a.stopWords)
	x, err := vec.fitTransform(dirs)
	if err != nil {
		return nil, err
	}
	labels, centers, err := kmeans(x, a.nClusters, a.maxIter, a.rng)
	if err != nil {
		return nil, err
	}

	names := make([]string, a.nClusters)
	for c := 0; c < a.nClusters; c++ {
		names[c] = clusterName(centers.RawRowView(c), vec.featureNames(), nameWeightThreshold)
	}

	analysis := &Analysis{
		ClusterCount: a.nClusters,
		Assignments:  make([]Assignment, len(paths)),
	}
	for i, p := range paths {
		analysis.Assignments[i] = Assignment{Path: p, Component: names[labels[i]]}
	}
	sort.SliceStable(analysis.Assignments, func(i, j int) bool {
		return analysis.Assignments[i].Component < analysis.Assignments[j].Component
	})
	return analysis, nil
}

// dirname strips the filename and normalizes separators to forward
// slashes, so Windows-style paths vectorize the same as POSIX ones.
func dirname(p string) string {
	return path.Dir(strings.ReplaceAll(p, `\`, "/"))
}

// clusterName joins the features whose center weight exceeds the
// threshold, heaviest first. Equal weights order by feature name
// descending so renames are deterministic.
func clusterName(center []float64, features []string, threshold float64) string {
	type weighted struct {
		feature string
		weight  float64
	}
	ranked := make([]weighted, 0, len(features))
	for j, f := range features {
		if center[j] > threshold {
			ranked = append(ranked, weighted{feature: f, weight: center[j]})
		}
	}
	if len(ranked) == 0 {
		return ""
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].feature > ranked[j].feature
	})
	parts := make([]string, len(ranked))
	for i, r := range ranked {
		parts[i] = r.feature
	}
	return strings.Join(parts, ".")
}
