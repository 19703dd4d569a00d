package breed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dotcommander/racas/internal/discovery"
	"github.com/dotcommander/racas/internal/schema"
)

// LoadBreeds reads the breed list from a JSON or YAML file. A nil validator
// skips structural schema validation.
func LoadBreeds(path string, validator *schema.Validator) ([]Breed, error) {
	data, err := discovery.ReadDataFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBreeds(path, data, validator)
}

// ParseBreeds validates and decodes breed list JSON.
func ParseBreeds(file string, data []byte, validator *schema.Validator) ([]Breed, error) {
	if validator != nil {
		issues, err := validator.ValidateBreeds(file, data)
		if err != nil {
			return nil, err
		}
		if len(issues) > 0 {
			return nil, &schema.Error{File: file, Issues: issues}
		}
	}

	var breeds []Breed
	if err := json.Unmarshal(data, &breeds); err != nil {
		return nil, fmt.Errorf("failed to parse breeds %s: %w", file, err)
	}
	return breeds, nil
}

// Aliases maps a breed slug to its official alternative names.
type Aliases map[string][]string

// LoadAliases reads the alias map. An empty path yields an empty map.
func LoadAliases(path string) (Aliases, error) {
	if path == "" {
		return Aliases{}, nil
	}
	data, err := discovery.ReadDataFile(path)
	if err != nil {
		return nil, err
	}
	var aliases Aliases
	if err := json.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("failed to parse aliases %s: %w", path, err)
	}
	if aliases == nil {
		aliases = Aliases{}
	}
	return aliases, nil
}

// For returns the trimmed aliases of slug, deduplicated case-insensitively in
// first-seen order.
func (a Aliases) For(slug string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, alias := range a[slug] {
		alias = strings.TrimSpace(alias)
		key := strings.ToLower(alias)
		if alias == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, alias)
	}
	return out
}
