package cochange

// CoChange is one directional pair. CoChanges counts the units touching
// both paths and is symmetric; Changes counts the units touching Primary,
// so Coupling is anchored to Primary and generally differs from the
// reverse row.
type CoChange struct {
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary"`
	CoChanges int     `json:"cochanges"`
	Changes   int     `json:"changes"`
	Coupling  float64 `json:"coupling"` // (0, 1]
}

// Analysis is the full co-change report, sorted by coupling descending.
type Analysis struct {
	By    string     `json:"by"`
	On    string     `json:"on"`
	Pairs []CoChange `json:"pairs"`
}

// Pair returns the row for (primary, secondary), if present.
func (a *Analysis) Pair(primary, secondary string) (CoChange, bool) {
	for _, p := range a.Pairs {
		if p.Primary == primary && p.Secondary == secondary {
			return p, true
		}
	}
	return CoChange{}, false
}
