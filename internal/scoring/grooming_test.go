package scoring

import (
	"strings"
	"testing"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
)

func TestGroomingMinimalAttributes(t *testing.T) {
	got := Grooming(testRules(), "Pug", attrs(breed.RawAttributes{}))

	if got.Value != 1 {
		t.Errorf("Value = %d, want 1", got.Value)
	}
	f := got.Facts
	if f.Escovacao != 1 || f.Shedding != 1 || f.Tosa != 1 {
		t.Errorf("components = (%d, %d, %d), want (1, 1, 1)", f.Escovacao, f.Shedding, f.Tosa)
	}
	if f.PicosSazonais {
		t.Error("PicosSazonais = true for default shedding")
	}

	want := "Para os cães da raça Pug, recomenda-se <strong>escovação simples</strong> " +
		"(<strong>1–2x/semana</strong>), devido a sua pelagem curta; " +
		"eles apresentam <strong>queda de pelos baixa</strong> — não possui subpelo; " +
		"e <strong>não requer tosa</strong>."
	if got.Text != want {
		t.Errorf("Text =\n%s\nwant\n%s", got.Text, want)
	}
}

func TestGroomingSeasonalBump(t *testing.T) {
	tests := []struct {
		season       string
		wantShedding int
		wantSeasonal bool
	}{
		{breed.SheddingBaixo, 2, false},
		{breed.SheddingModerado, 3, true},
		{breed.SheddingAlto, 3, true},
		{breed.SheddingExplosivo, 2, false},
		{"desconhecido", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.season, func(t *testing.T) {
			got := Grooming(testRules(), "X", attrs(breed.RawAttributes{
				Subpelo:         strPtr(breed.UndercoatLeve),
				SheddingEstacao: strPtr(tt.season),
			}))
			if got.Facts.Shedding != tt.wantShedding {
				t.Errorf("Shedding = %d, want %d", got.Facts.Shedding, tt.wantShedding)
			}
			if got.Facts.PicosSazonais != tt.wantSeasonal {
				t.Errorf("PicosSazonais = %v, want %v", got.Facts.PicosSazonais, tt.wantSeasonal)
			}
			if strings.Contains(got.Text, seasonalClause) != tt.wantSeasonal {
				t.Errorf("Text seasonal clause mismatch: %q", got.Text)
			}
		})
	}
}

func TestGroomingSeasonalBumpClamped(t *testing.T) {
	table := testRules()
	table.SheddingSubpelo = map[string]int{"denso": 5}

	got := Grooming(table, "X", attrs(breed.RawAttributes{
		Subpelo:         strPtr(breed.UndercoatDenso),
		SheddingEstacao: strPtr(breed.SheddingAlto),
	}))
	if got.Facts.Shedding != 5 {
		t.Errorf("Shedding = %d, want 5", got.Facts.Shedding)
	}
}

func TestGroomingHeavyCoat(t *testing.T) {
	got := Grooming(testRules(), "Pastor-alemão", attrs(breed.RawAttributes{
		PelagemTipo:     strPtr(breed.CoatDuplaLonga),
		Subpelo:         strPtr(breed.UndercoatDenso),
		SheddingEstacao: strPtr(breed.SheddingAlto),
		NecessitaTosa:   strPtr(breed.TrimRegular4a6),
	}))

	if got.Value != 4 {
		t.Errorf("Value = %d, want 4", got.Value)
	}
	f := got.Facts
	if f.EscovacaoTxt != "diária" {
		t.Errorf("EscovacaoTxt = %q", f.EscovacaoTxt)
	}
	if f.QuedaTxt != "alta com picos sazonais" {
		t.Errorf("QuedaTxt = %q", f.QuedaTxt)
	}
	if !strings.Contains(got.Text, "<strong>queda de pelos alta</strong> com picos sazonais — possui subpelo denso;") {
		t.Errorf("Text = %q", got.Text)
	}
	if !strings.HasSuffix(got.Text, "e <strong>requer tosa frequente (a cada 4–6 semanas)</strong>.") {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestGroomingUnknownUndercoat(t *testing.T) {
	got := Grooming(testRules(), "X", attrs(breed.RawAttributes{Subpelo: strPtr("medio")}))

	if got.Facts.Shedding != rules.DefaultGrooming {
		t.Errorf("Shedding = %d, want %d", got.Facts.Shedding, rules.DefaultGrooming)
	}
	if got.Facts.SubpeloTxt != "" {
		t.Errorf("SubpeloTxt = %q, want empty", got.Facts.SubpeloTxt)
	}
	if strings.Contains(got.Text, "—") {
		t.Errorf("Text has an undercoat clause: %q", got.Text)
	}
	if got.Facts.QuedaNivelTxt != "moderada" {
		t.Errorf("QuedaNivelTxt = %q", got.Facts.QuedaNivelTxt)
	}
}

func TestGroomingMissingWeightsScoresZero(t *testing.T) {
	table := testRules()
	table.Pesos.HigienePelagem = nil

	got := Grooming(table, "X", attrs(breed.RawAttributes{}))
	if got.Value != 0 {
		t.Errorf("Value = %d, want 0", got.Value)
	}
}
