package site

import (
	"reflect"
	"testing"
)

func TestSafeSubstitute(t *testing.T) {
	vars := map[string]string{
		"nome":    "Pug",
		"baseUrl": "https://x.org",
		"n":       "$nome",
	}

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "<h1>$nome</h1>", "<h1>Pug</h1>"},
		{"braced", "${baseUrl}/racas/", "https://x.org/racas/"},
		{"braced adjacent text", "${nome}s", "Pugs"},
		{"greedy identifier", "$nomes", "$nomes"},
		{"escaped dollar", "R$$ 10", "R$ 10"},
		{"unknown left intact", "$missing and ${missing}", "$missing and ${missing}"},
		{"lone dollar", "custa $ 5", "custa $ 5"},
		{"dollar digit", "$5", "$5"},
		{"unterminated brace", "${nome", "${nome"},
		{"values are not re-expanded", "$n", "$nome"},
		{"no placeholders", "<p>oi</p>", "<p>oi</p>"},
		{"underscore names", "$HEAD_BASE", "$HEAD_BASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTemplate("t", tt.src).SafeSubstitute(vars)
			if got != tt.want {
				t.Errorf("SafeSubstitute(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tpl := NewTemplate("t", "$a ${b} $$ $a $_c1")
	want := []string{"a", "b", "_c1"}
	if got := tpl.Placeholders(); !reflect.DeepEqual(got, want) {
		t.Errorf("Placeholders() = %v, want %v", got, want)
	}
}
