package scoring

import (
	"sort"
)

// Range is a closed score interval.
type Range struct {
	Min float64
	Max float64
}

// DefaultRange is the 0-5 range shared by every sub-score.
var DefaultRange = Range{Min: MinScore, Max: MaxScore}

// Clamp bounds v to the range.
func (r Range) Clamp(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// WeightedMean combines named sub-scores with matching weights into
// round(clamp(Σ value·weight / Σ weight)). Sub-scores without a weight entry
// are ignored and weights without a sub-score are not counted. When the used
// weights sum to zero the denominator is 1, so the result is the clamped,
// rounded weighted sum (0 for all-zero weights).
//
// Terms are summed in key order so the result does not depend on map
// iteration.
func WeightedMean(values, weights map[string]float64, r Range) int {
	keys := make([]string, 0, len(values))
	for k := range values {
		if _, ok := weights[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var sum, denom float64
	for _, k := range keys {
		sum += values[k] * weights[k]
		denom += weights[k]
	}
	if denom == 0 {
		denom = 1
	}
	return Round(r.Clamp(sum / denom))
}
