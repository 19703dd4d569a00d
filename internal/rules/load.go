package rules

import (
	"encoding/json"
	"fmt"

	"github.com/dotcommander/racas/internal/discovery"
	"github.com/dotcommander/racas/internal/schema"
)

// Load reads a rule table from a JSON or YAML file, validates it against the
// rules schema and decodes it. Schema violations are returned as a
// *schema.Error.
func Load(path string, validator *schema.Validator) (*RuleTable, error) {
	data, err := discovery.ReadDataFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data, validator)
}

// Parse validates and decodes rule table JSON. A nil validator skips schema
// validation.
func Parse(file string, data []byte, validator *schema.Validator) (*RuleTable, error) {
	if validator != nil {
		issues, err := validator.ValidateRules(file, data)
		if err != nil {
			return nil, err
		}
		if len(issues) > 0 {
			return nil, &schema.Error{File: file, Issues: issues}
		}
	}

	var table RuleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse rule table %s: %w", file, err)
	}
	return &table, nil
}
