package scoring

import (
	"testing"
)

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]float64
		weights map[string]float64
		want    int
	}{
		{
			name:    "equal weights is the rounded mean",
			values:  map[string]float64{"a": 1, "b": 2, "c": 4},
			weights: map[string]float64{"a": 1, "b": 1, "c": 1},
			want:    2,
		},
		{
			name:    "equal non-unit weights",
			values:  map[string]float64{"a": 5, "b": 5, "c": 4},
			weights: map[string]float64{"a": 2, "b": 2, "c": 2},
			want:    5,
		},
		{
			name:    "weights need not sum to one",
			values:  map[string]float64{"a": 4, "b": 2},
			weights: map[string]float64{"a": 2, "b": 2},
			want:    3,
		},
		{
			name:    "sub-score without weight is ignored",
			values:  map[string]float64{"a": 5, "b": 1},
			weights: map[string]float64{"a": 1},
			want:    5,
		},
		{
			name:    "weight without sub-score is not counted",
			values:  map[string]float64{"a": 4},
			weights: map[string]float64{"a": 1, "z": 9},
			want:    4,
		},
		{
			name:    "all zero weights does not divide by zero",
			values:  map[string]float64{"a": 3, "b": 4},
			weights: map[string]float64{"a": 0, "b": 0},
			want:    0,
		},
		{
			name:    "no weights at all",
			values:  map[string]float64{"a": 3},
			weights: nil,
			want:    0,
		},
		{
			name:    "clamped above",
			values:  map[string]float64{"a": 9},
			weights: map[string]float64{"a": 1},
			want:    5,
		},
		{
			name:    "clamped below",
			values:  map[string]float64{"a": -3},
			weights: map[string]float64{"a": 1},
			want:    0,
		},
		{
			name:    "half rounds to even (down)",
			values:  map[string]float64{"a": 2, "b": 3},
			weights: map[string]float64{"a": 1, "b": 1},
			want:    2,
		},
		{
			name:    "half rounds to even (up)",
			values:  map[string]float64{"a": 3, "b": 4},
			weights: map[string]float64{"a": 1, "b": 1},
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedMean(tt.values, tt.weights, DefaultRange)
			if got != tt.want {
				t.Errorf("WeightedMean() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeightedMeanCustomRange(t *testing.T) {
	r := Range{Min: 1, Max: 5}
	if got := WeightedMean(map[string]float64{"a": 0}, map[string]float64{"a": 1}, r); got != 1 {
		t.Errorf("WeightedMean() with [1,5] = %d, want 1", got)
	}
}

func TestWeightedMeanEqualWeightsProperty(t *testing.T) {
	for a := 0; a <= 5; a++ {
		for b := 0; b <= 5; b++ {
			for c := 0; c <= 5; c++ {
				values := map[string]float64{"a": float64(a), "b": float64(b), "c": float64(c)}
				weights := map[string]float64{"a": 0.7, "b": 0.7, "c": 0.7}
				want := Round(DefaultRange.Clamp(float64(a+b+c) / 3))
				if got := WeightedMean(values, weights, DefaultRange); got != want {
					t.Errorf("WeightedMean(%d,%d,%d) = %d, want %d", a, b, c, got, want)
				}
			}
		}
	}
}
