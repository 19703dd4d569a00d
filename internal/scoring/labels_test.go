package scoring

import (
	"reflect"
	"strings"
	"testing"
)

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "muito baixa"},
		{2, "baixa"},
		{3, "moderada"},
		{4, "alta"},
		{5, "muito alta"},
		{0, "moderada"},
		{6, "moderada"},
		{-1, "moderada"},
	}
	for _, tt := range tests {
		if got := LevelLabel(tt.in); got != tt.want {
			t.Errorf("LevelLabel(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationPhrase(t *testing.T) {
	tests := []struct {
		mins *int
		want string
	}{
		{intPtr(120), "longa duração"},
		{intPtr(75), "duração moderada a longa"},
		{intPtr(60), "duração moderada"},
		{intPtr(45), "duração curta a moderada"},
		{intPtr(10), "curta duração"},
		{nil, "duração moderada"},
	}
	for _, tt := range tests {
		if got := DurationPhrase(tt.mins); got != tt.want {
			t.Errorf("DurationPhrase() = %q, want %q", got, tt.want)
		}
	}
}

func TestFunctionLabel(t *testing.T) {
	tests := map[string]string{
		"herding":      "pastoreio",
		"retriever":    "recolhedor de caça",
		"sight":        "cão de caça à vista",
		"trenó":        "trenó",
		"caca_pequena": "caca pequena",
		"":             "",
	}
	for in, want := range tests {
		if got := FunctionLabel(in); got != want {
			t.Errorf("FunctionLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggestionTokens(t *testing.T) {
	tests := []struct {
		phrase string
		want   []string
	}{
		{
			"aportes (buscar e trazer) e natação",
			[]string{SuggestionRetrieve, SuggestionAquatic},
		},
		{
			"natação e brincadeiras com água com supervisão",
			[]string{SuggestionAquatic, SuggestionAquatic},
		},
		{
			"Pastoreio simulado, obediência e truques",
			[]string{"pastoreio simulado", "obediência", "truques"},
		},
		{
			"corridas controladas (lure) e busca visual por alvos",
			[]string{"corridas controladas (lure)", "busca visual por alvos"},
		},
		{
			"obediência,, autocontrole",
			[]string{"obediência", "autocontrole"},
		},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got := SuggestionTokens(tt.phrase)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestionTokens(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestEveryFunctionSuggestionTokenizes(t *testing.T) {
	for _, code := range []string{"herding", "retriever", "pointer", "terrier", "scent", "guard", "water", "sight", "companhia"} {
		phrase, ok := ActivitySuggestion(code)
		if !ok {
			t.Errorf("ActivitySuggestion(%q) missing", code)
			continue
		}
		for _, tok := range SuggestionTokens(phrase) {
			if tok == "" || strings.Count(tok, "(") != strings.Count(tok, ")") {
				t.Errorf("%s: bad token %q", code, tok)
			}
		}
	}
	if _, ok := ActivitySuggestion("mushing"); ok {
		t.Error("ActivitySuggestion(mushing) ok = true")
	}
}

func TestBrushingFrequency(t *testing.T) {
	tests := map[string]string{
		"sem_pelo":     "1x/semana ou conforme necessário",
		"curta":        "1–2x/semana",
		"media":        "2–3x/semana",
		"dupla_curta":  "2–3x/semana",
		"longa":        "3–5x/semana",
		"encaracolada": "diária ou em dias alternados",
		"dupla_longa":  "diária",
		"arame":        "2–3x/semana",
	}
	for in, want := range tests {
		if got := BrushingFrequency(in); got != want {
			t.Errorf("BrushingFrequency(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBrushingEffortLabel(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "escovação simples"},
		{2, "escovação regular"},
		{3, "escovação cuidadosa"},
		{4, "escovação intensiva"},
		{5, "escovação regular"},
	}
	for _, tt := range tests {
		if got := BrushingEffortLabel(tt.in); got != tt.want {
			t.Errorf("BrushingEffortLabel(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCoatAndTrimLabels(t *testing.T) {
	if got := CoatLabel("dupla_longa"); got != "dupla longa" {
		t.Errorf("CoatLabel(dupla_longa) = %q", got)
	}
	if got := CoatLabel("fio_duro"); got != "fio duro" {
		t.Errorf("CoatLabel(fio_duro) = %q", got)
	}
	if got := TrimLabel("regular_8_10"); got != "requer tosa regular (a cada 8–10 semanas)" {
		t.Errorf("TrimLabel(regular_8_10) = %q", got)
	}
	if got := TrimLabel("sempre"); got != "não requer tosa" {
		t.Errorf("TrimLabel(sempre) = %q", got)
	}
	if got := UndercoatLabel("leve"); got != "possui subpelo leve" {
		t.Errorf("UndercoatLabel(leve) = %q", got)
	}
}

func TestSpaceLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "apartamento pequeno (≤ 50 m²), com passeios diários e enriquecimento"},
		{4.5, "apartamento pequeno (≤ 50 m²), com passeios diários e enriquecimento"},
		{4.4, "apartamento médio (50–80 m²)"},
		{3.6, "apartamento médio (50–80 m²)"},
		{3.5, "apartamento amplo ou casa pequena"},
		{2.6, "apartamento amplo ou casa pequena"},
		{2.5, "casa com quintal"},
		{1.6, "casa com quintal"},
		{1.5, "área ampla (quintal grande/chácara)"},
		{0, "área ampla (quintal grande/chácara)"},
	}
	for _, tt := range tests {
		if got := SpaceLabel(tt.in); got != tt.want {
			t.Errorf("SpaceLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
