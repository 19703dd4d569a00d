// Package schema validates data files against embedded CUE schemas before
// they are decoded into Go types.
package schema

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/dotcommander/racas/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Definition names looked up in the compiled schemas.
const (
	DefRules  = "#Rules"
	DefBreeds = "#Breeds"
)

// Validator handles CUE validation
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a Validator with the embedded schemas loaded.
func NewValidator() (*Validator, error) {
	v := &Validator{ctx: cuecontext.New()}
	if err := v.loadSchemas(); err != nil {
		return nil, err
	}
	return v, nil
}

// loadSchemas compiles every embedded .cue file into one value.
func (v *Validator) loadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}
		// Every file shares the package clause; keep it once.
		src := strings.TrimPrefix(strings.TrimSpace(string(content)), "package schemas")
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return fmt.Errorf("no CUE schemas embedded")
	}

	value := v.ctx.CompileString("package schemas\n"+strings.Join(sources, "\n"), cue.Filename("schemas.cue"))
	if err := value.Err(); err != nil {
		return fmt.Errorf("compiling schemas: %w", err)
	}
	v.schema = value
	return nil
}

// ValidateRules validates a rule table document (JSON bytes).
func (v *Validator) ValidateRules(file string, data []byte) ([]types.ValidationError, error) {
	return v.validate(DefRules, file, data)
}

// ValidateBreeds validates a breed list document (JSON bytes).
func (v *Validator) ValidateBreeds(file string, data []byte) ([]types.ValidationError, error) {
	return v.validate(DefBreeds, file, data)
}

// validate unifies data with the named definition. A non-nil error means the
// data could not be read at all; schema violations come back as the slice.
func (v *Validator) validate(def, file string, data []byte) ([]types.ValidationError, error) {
	expr, err := cuejson.Extract(file, data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	value := v.ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("error building %s: %w", file, err)
	}

	schema := v.schema.LookupPath(cue.ParsePath(def))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema definition %s not found", def)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(file, err), nil
	}
	return nil, nil
}

// extractErrors flattens a CUE error list into validation errors.
func extractErrors(file string, err error) []types.ValidationError {
	var out []types.ValidationError
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		p := strings.Join(e.Path(), ".")
		key := p + "|" + msg
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, types.ValidationError{
			File:     file,
			Message:  msg,
			Severity: types.SeverityError,
			Path:     p,
		})
	}
	if len(out) == 0 {
		out = append(out, types.ValidationError{
			File:     file,
			Message:  err.Error(),
			Severity: types.SeverityError,
		})
	}
	return out
}

// Error reports a failed schema validation.
type Error struct {
	File   string
	Issues []types.ValidationError
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d schema violation(s)", e.File, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			fmt.Fprintf(&b, "; %s: %s", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "; %s", issue.Message)
		}
	}
	return b.String()
}
