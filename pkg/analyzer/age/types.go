package age

import "time"

// Record is one group of log rows with its age in fractional days since
// the most recent change.
type Record struct {
	Values map[string]string `json:"values"`
	Age    float64           `json:"age"`
}

// Value returns the record's value for a grouping key.
func (r *Record) Value(key string) string {
	return r.Values[key]
}

// Analysis is the full age report.
type Analysis struct {
	Keys          []string  `json:"keys"`
	ReferenceTime time.Time `json:"reference_time"`
	Records       []Record  `json:"records"`
}
