package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
)

func TestChooseFunctions(t *testing.T) {
	tests := []struct {
		name      string
		functions []string
		preferred string
		want      []string
	}{
		{"none", nil, "", []string{}},
		{"single", []string{"scent"}, "", []string{"scent"}},
		{"first two", []string{"herding", "guard", "water"}, "", []string{"herding", "guard"}},
		{"preferred moves first", []string{"herding", "retriever"}, "retriever", []string{"retriever", "herding"}},
		{"preferred not listed", []string{"herding", "guard"}, "water", []string{"herding", "guard"}},
		{"duplicates collapse", []string{"scent", "scent"}, "", []string{"scent"}},
		{"preferred alone", []string{"guard"}, "guard", []string{"guard"}},
		{"preferred without list", nil, "guard", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseFunctions(tt.functions, tt.preferred)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChooseFunctions(%v, %q) = %v, want %v", tt.functions, tt.preferred, got, tt.want)
			}
		})
	}
}

func TestActivityRetrieverGuard(t *testing.T) {
	a := attrs(breed.RawAttributes{
		FCIGrupo: "8",
		Funcoes:  []string{"retriever", "guard"},
	})
	got := Activity(testRules(), "Labrador", a)

	if got.Value != 4 {
		t.Errorf("Value = %d, want 4", got.Value)
	}
	f := got.Facts
	if f.Intensidade != 4 || f.Duracao != 5 || f.EstimuloMental != 4 {
		t.Errorf("components = (%d, %d, %d), want (4, 5, 4)", f.Intensidade, f.Duracao, f.EstimuloMental)
	}
	if !reflect.DeepEqual(f.FuncoesEscolhidas, []string{"retriever", "guard"}) {
		t.Errorf("FuncoesEscolhidas = %v", f.FuncoesEscolhidas)
	}
	wantSug := []string{
		SuggestionRetrieve,
		SuggestionAquatic,
		"obediência",
		"autocontrole",
		"socialização orientada",
	}
	if !reflect.DeepEqual(f.Sugestoes, wantSug) {
		t.Errorf("Sugestoes = %v, want %v", f.Sugestoes, wantSug)
	}
	if f.PerfilLabel != profileLabelMany {
		t.Errorf("PerfilLabel = %q, want plural", f.PerfilLabel)
	}
	if f.MinutosDia == nil || *f.MinutosDia != 90 {
		t.Errorf("MinutosDia = %v, want 90", f.MinutosDia)
	}

	want := "Os cães da raça Labrador costumam apresentar " +
		"<strong>nível de energia física alta</strong>, " +
		"necessitando de atividades de <strong>longa duração</strong> (≈90 min/dia) " +
		"e de <strong>exigência cognitiva alta</strong>. " +
		"Seus perfis/funções típicas são de <strong>recolhedor de caça e guarda</strong>, " +
		"para as quais recomendam-se <strong>aportes (buscar e trazer), " +
		"atividades aquáticas supervisionadas, obediência, autocontrole e " +
		"socialização orientada</strong>."
	if got.Text != want {
		t.Errorf("Text =\n%s\nwant\n%s", got.Text, want)
	}
}

func TestActivityNoFunctions(t *testing.T) {
	got := Activity(testRules(), "Pug", attrs(breed.RawAttributes{FCIGrupo: "9"}))

	if got.Value != 1 {
		t.Errorf("Value = %d, want 1", got.Value)
	}
	if got.Facts.EstimuloMental != rules.DefaultMental {
		t.Errorf("EstimuloMental = %d, want default %d", got.Facts.EstimuloMental, rules.DefaultMental)
	}
	if len(got.Facts.FuncoesEscolhidas) != 0 || got.Facts.FuncoesEscolhidas == nil {
		t.Errorf("FuncoesEscolhidas = %#v, want empty non-nil", got.Facts.FuncoesEscolhidas)
	}
	if got.Facts.AtivTxtTrailer != "" {
		t.Errorf("AtivTxtTrailer = %q, want empty", got.Facts.AtivTxtTrailer)
	}

	want := "Os cães da raça Pug costumam apresentar " +
		"<strong>nível de energia física muito baixa</strong>, " +
		"necessitando de atividades de <strong>curta duração</strong> (≈30 min/dia) " +
		"e de <strong>exigência cognitiva baixa</strong>."
	if got.Text != want {
		t.Errorf("Text =\n%s\nwant\n%s", got.Text, want)
	}
}

func TestActivityFunctionWithoutSuggestion(t *testing.T) {
	got := Activity(testRules(), "Husky", attrs(breed.RawAttributes{
		FCIGrupo: "5",
		Funcoes:  []string{"mushing"},
	}))

	if got.Facts.FuncaoTxt != "mushing" {
		t.Errorf("FuncaoTxt = %q, want %q", got.Facts.FuncaoTxt, "mushing")
	}
	if got.Facts.AtivTxtTrailer != "." {
		t.Errorf("AtivTxtTrailer = %q, want %q", got.Facts.AtivTxtTrailer, ".")
	}
	if !strings.HasSuffix(got.Text, "Seu perfil/função típica é de <strong>mushing</strong>.") {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestActivitySingleFunctionTrailer(t *testing.T) {
	got := Activity(testRules(), "Border Collie", attrs(breed.RawAttributes{
		FCIGrupo: "1",
		Funcoes:  []string{"herding"},
	}))

	if got.Value != 5 {
		t.Errorf("Value = %d, want 5", got.Value)
	}
	wantTrailer := ", para o qual recomendam-se <strong>pastoreio simulado, obediência e truques</strong>."
	if got.Facts.AtivTxtTrailer != wantTrailer {
		t.Errorf("AtivTxtTrailer = %q, want %q", got.Facts.AtivTxtTrailer, wantTrailer)
	}
}

func TestActivityNullMinutes(t *testing.T) {
	got := Activity(testRules(), "Dachshund", attrs(breed.RawAttributes{FCIGrupo: "4"}))

	if got.Facts.MinutosDia != nil {
		t.Errorf("MinutosDia = %d, want nil", *got.Facts.MinutosDia)
	}
	if got.Facts.Duracao != 3 {
		t.Errorf("Duracao = %d, want 3", got.Facts.Duracao)
	}
	if got.Facts.Intensidade != rules.DefaultIntensity {
		t.Errorf("Intensidade = %d, want %d", got.Facts.Intensidade, rules.DefaultIntensity)
	}
	if strings.Contains(got.Text, "min/dia") {
		t.Errorf("Text mentions minutes without a value: %q", got.Text)
	}
	if !strings.Contains(got.Text, "<strong>duração moderada</strong> e de") {
		t.Errorf("Text = %q", got.Text)
	}
}

func TestActivityUnknownGroup(t *testing.T) {
	got := Activity(testRules(), "SRD", attrs(breed.RawAttributes{}))

	if got.Facts.Intensidade != 3 || got.Facts.Duracao != 3 {
		t.Errorf("components = (%d, %d), want (3, 3)", got.Facts.Intensidade, got.Facts.Duracao)
	}
	if got.Facts.MinutosDia == nil || *got.Facts.MinutosDia != rules.DefaultMinutes {
		t.Errorf("MinutosDia = %v, want %d", got.Facts.MinutosDia, rules.DefaultMinutes)
	}
}

func TestActivityMentalIsMaximum(t *testing.T) {
	got := Activity(testRules(), "X", attrs(breed.RawAttributes{
		Funcoes: []string{"companhia", "sight", "herding"},
	}))
	if got.Facts.EstimuloMental != 5 {
		t.Errorf("EstimuloMental = %d, want 5", got.Facts.EstimuloMental)
	}
	// Only the first two functions are described.
	if !reflect.DeepEqual(got.Facts.FuncoesEscolhidas, []string{"companhia", "sight"}) {
		t.Errorf("FuncoesEscolhidas = %v", got.Facts.FuncoesEscolhidas)
	}
}

func TestActivitySuggestionsDeduplicated(t *testing.T) {
	got := Activity(testRules(), "Terra-nova", attrs(breed.RawAttributes{
		Funcoes: []string{"water", "retriever"},
	}))

	want := []string{SuggestionAquatic, SuggestionRetrieve}
	if !reflect.DeepEqual(got.Facts.Sugestoes, want) {
		t.Errorf("Sugestoes = %v, want %v", got.Facts.Sugestoes, want)
	}
}
