package masschange

// MassChange is one qualifying revision with the number of paths it touched.
type MassChange struct {
	Revision  string `json:"revision"`
	PathCount int    `json:"path_count"`
	Message   string `json:"message"`
	Author    string `json:"author"`
}

// Analysis is the full mass-change extraction result.
type Analysis struct {
	MinChanges int          `json:"min_changes"`
	Changes    []MassChange `json:"changes"`
}

// Revisions returns the distinct qualifying revisions in output order.
func (a *Analysis) Revisions() []string {
	var revs []string
	seen := make(map[string]struct{})
	for _, c := range a.Changes {
		if _, ok := seen[c.Revision]; ok {
			continue
		}
		seen[c.Revision] = struct{}{}
		revs = append(revs, c.Revision)
	}
	return revs
}
