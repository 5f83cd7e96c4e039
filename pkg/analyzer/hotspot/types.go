package hotspot

import (
	"sort"

	"github.com/ImEagle/codemetrics/pkg/stats"
)

// HotSpot is one ranked row: the size-table columns for a key plus its
// change count and scores. Path holds the value of the aggregation column,
// which is a file path under the default grouping.
type HotSpot struct {
	Path            string            `json:"path"`
	Language        string            `json:"language,omitempty"`
	Blank           int               `json:"blank,omitempty"`
	Comment         int               `json:"comment,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
	Complexity      float64           `json:"complexity"`
	Changes         float64           `json:"changes"`
	ComplexityScore float64           `json:"complexity_score"` // 0-1, min-max scaled and squared
	ChangesScore    float64           `json:"changes_score"`    // 0-1, min-max scaled and squared
	Score           float64           `json:"score"`            // 0-2, sum of the two
}

// Analysis is the full hot-spot ranking result, in size-table order.
type Analysis struct {
	By                string    `json:"by"`
	CountOneChangePer []string  `json:"count_one_change_per"`
	Spots             []HotSpot `json:"spots"`
}

// Top returns the n highest-scoring spots, descending. Ties keep the
// original table order.
func (a *Analysis) Top(n int) []HotSpot {
	ranked := make([]HotSpot, len(a.Spots))
	copy(ranked, a.Spots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// MeanScore returns the average hot-spot score across the table.
func (a *Analysis) MeanScore() float64 {
	scores := make([]float64, len(a.Spots))
	for i := range a.Spots {
		scores[i] = a.Spots[i].Score
	}
	return stats.Mean(scores)
}
