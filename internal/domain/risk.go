package domain

// RiskBand is a display bucket for a numeric risk score. Bands drive colour
// only; no underwriting decision depends on them.
type RiskBand struct {
	Name  string // "high", "medium-high", "medium", "low"
	Color string // "red", "orange", "yellow", "green"
	Min   int    // inclusive lower bound
}

// riskBands is ordered from the highest threshold down.
var riskBands = []RiskBand{
	{Name: "high", Color: "red", Min: 80},
	{Name: "medium-high", Color: "orange", Min: 70},
	{Name: "medium", Color: "yellow", Min: 60},
	{Name: "low", Color: "green", Min: 0},
}

// RiskBands returns a copy of the band table, highest first.
func RiskBands() []RiskBand {
	return append([]RiskBand(nil), riskBands...)
}

// BandForScore returns the band a score falls in. Scores below zero land in
// the lowest band; there is no upper bound.
func BandForScore(score int) RiskBand {
	for _, b := range riskBands {
		if score >= b.Min {
			return b
		}
	}
	return riskBands[len(riskBands)-1]
}
