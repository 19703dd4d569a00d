package site

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// placeholderRe matches $$, $name and ${name}. Identifiers are ASCII letters,
// digits and underscores, not starting with a digit.
var placeholderRe = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Template is a page template with $name placeholders.
type Template struct {
	Name   string
	source string
}

// NewTemplate wraps template source text.
func NewTemplate(name, source string) *Template {
	return &Template{Name: name, source: source}
}

// ReadTemplate loads a template file.
func ReadTemplate(name, path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return NewTemplate(name, string(data)), nil
}

// SafeSubstitute replaces $name and ${name} with vars[name] and $$ with a
// single $. Placeholders without a value, and any other $, are left intact.
func (t *Template) SafeSubstitute(vars map[string]string) string {
	matches := placeholderRe.FindAllStringSubmatchIndex(t.source, -1)
	if len(matches) == 0 {
		return t.source
	}

	var b strings.Builder
	b.Grow(len(t.source))
	last := 0
	for _, m := range matches {
		b.WriteString(t.source[last:m[0]])
		last = m[1]

		if m[2] >= 0 {
			b.WriteByte('$')
			continue
		}
		var name string
		if m[4] >= 0 {
			name = t.source[m[4]:m[5]]
		} else {
			name = t.source[m[6]:m[7]]
		}
		if v, ok := vars[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(t.source[m[0]:m[1]])
		}
	}
	b.WriteString(t.source[last:])
	return b.String()
}

// Placeholders lists the distinct placeholder names in the template, in
// first-seen order.
func (t *Template) Placeholders() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range placeholderRe.FindAllStringSubmatch(t.source, -1) {
		name := m[2]
		if name == "" {
			name = m[3]
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
