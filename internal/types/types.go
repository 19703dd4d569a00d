// Package types provides shared types used across the racas codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValidationError represents a problem found in an input data file.
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning
	Path     string // dotted path inside the document, when known
}

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Data file kinds.
const (
	KindRules   = "rules"
	KindBreeds  = "breeds"
	KindSite    = "site"
	KindAliases = "aliases"
)

// FlexString decodes from a JSON string, number or null. Data files carry
// identifiers such as FCI groups and measurements in either form.
type FlexString string

// UnmarshalJSON accepts a JSON string, number or null.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", data)
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the decoded text.
func (f FlexString) String() string { return string(f) }
