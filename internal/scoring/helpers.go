package scoring

import (
	"math"
)

// clampLevel bounds an integer level to [MinScore, MaxScore].
func clampLevel(v int) int {
	switch {
	case v < MinScore:
		return MinScore
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}

// clampFloat bounds v to [MinScore, MaxScore].
func clampFloat(v float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, v))
}

// Round rounds half to even, so 2.5 becomes 2 and 3.5 becomes 4.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}

// Breakpoints of the daily-minutes scale, checked in descending order; each
// tier includes its lower bound.
const (
	minutesTier5 = 90
	minutesTier4 = 75
	minutesTier3 = 60
	minutesTier2 = 45
)

// MinutesToScale converts daily exercise minutes to the 1-5 duration scale.
// nil (unknown) maps to 3.
func MinutesToScale(mins *int) int {
	if mins == nil {
		return 3
	}
	switch m := *mins; {
	case m >= minutesTier5:
		return 5
	case m >= minutesTier4:
		return 4
	case m >= minutesTier3:
		return 3
	case m >= minutesTier2:
		return 2
	default:
		return 1
	}
}
