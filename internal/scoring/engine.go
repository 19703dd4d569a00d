// Package scoring converts a breed's attributes into the activity, grooming
// and climate badge scores (0-5) together with their facts and explanatory
// text.
//
// Calculators are pure: they read the rule table and the normalized
// attributes and return values. The only ordering constraint is that Climate
// consumes the final Activity value.
package scoring

import (
	"fmt"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
)

// Engine scores breeds against a validated rule table and a fixed
// environment profile. It holds no mutable state and is safe for concurrent
// use.
type Engine struct {
	rules   *rules.RuleTable
	profile Profile
}

// NewEngine validates the rule table for the given profile override and
// returns an Engine. Validation failures are fatal configuration errors.
func NewEngine(t *rules.RuleTable, profileOverride string) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("rule table is nil")
	}
	if err := t.Validate(profileOverride); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	p, err := ResolveProfile(t, profileOverride)
	if err != nil {
		return nil, err
	}
	return &Engine{rules: t, profile: p}, nil
}

// Profile returns the environment profile used for climate scoring.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Rules returns the rule table.
func (e *Engine) Rules() *rules.RuleTable {
	return e.rules
}

// Score normalizes the breed's attributes and runs the three calculators,
// Activity before Climate.
func (e *Engine) Score(b breed.Breed) BreedScores {
	attrs := breed.Normalize(b.Atributos)
	activity := Activity(e.rules, b.Nome, attrs)
	return BreedScores{
		Activity: activity,
		Grooming: Grooming(e.rules, b.Nome, attrs),
		Climate:  Climate(e.profile, b.Nome, attrs, activity.Value),
	}
}
