package components

// Assignment maps one path to its inferred component label. The label may
// be empty when the path's cluster has no distinctive vocabulary.
type Assignment struct {
	Path      string `json:"path"`
	Component string `json:"component"`
}

// Analysis is the full component inference result, sorted by component.
type Analysis struct {
	ClusterCount int          `json:"cluster_count"`
	Assignments  []Assignment `json:"assignments"`
}

// Components returns the distinct labels in assignment order.
func (a *Analysis) Components() []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, as := range a.Assignments {
		if _, ok := seen[as.Component]; ok {
			continue
		}
		seen[as.Component] = struct{}{}
		labels = append(labels, as.Component)
	}
	return labels
}

// Component returns the label assigned to a path.
func (a *Analysis) Component(path string) (string, bool) {
	for _, as := range a.Assignments {
		if as.Path == path {
			return as.Component, true
		}
	}
	return "", false
}
