package pipeline

import (
	"time"

	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/site"
	"github.com/dotcommander/racas/internal/types"
)

// BreedResult is the scored outcome of one breed.
type BreedResult struct {
	Slug   string
	Nome   string
	Page   string // detail page URL
	Scores scoring.BreedScores
}

// Summary describes a completed run.
type Summary struct {
	Profile      string
	ProfileLabel string
	Breeds       []BreedResult
	Pages        []string // written page paths, relative to the output directory
	ClientFile   string
	Issues       []types.ValidationError
	StartTime    time.Time
	Duration     time.Duration
}

func newSummary(p scoring.Profile, start time.Time) *Summary {
	return &Summary{
		Profile:      p.Name,
		ProfileLabel: p.Label(),
		StartTime:    start,
	}
}

func (s *Summary) addBreed(sc site.Scored, url string) {
	s.Breeds = append(s.Breeds, BreedResult{
		Slug:   sc.Breed.SlugOrDefault(),
		Nome:   sc.Breed.Nome,
		Page:   url,
		Scores: sc.Scores,
	})
}

// ErrorCount returns the number of error-severity issues.
func (s *Summary) ErrorCount() int {
	return s.count(types.SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func (s *Summary) WarningCount() int {
	return s.count(types.SeverityWarning)
}

// HasErrors reports whether any error-severity issue was recorded.
func (s *Summary) HasErrors() bool {
	return s.ErrorCount() > 0
}

func (s *Summary) count(severity string) int {
	n := 0
	for _, issue := range s.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}
