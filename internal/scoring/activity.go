package scoring

import (
	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/textutil"
)

// Activity computes the physical activity sub-score.
//
// Intensity and daily minutes come from the FCI group, cognitive demand is
// the maximum mental value across all listed functions, and the chosen
// functions (at most two) drive the descriptive text.
func Activity(t *rules.RuleTable, name string, a breed.Attributes) ActivityScore {
	intensidade := clampLevel(t.Intensity(a.FCIGrupo))
	mins := t.Minutes(a.FCIGrupo)
	duracao := MinutesToScale(mins)
	estimulo := clampLevel(maxMental(t, a.Funcoes))

	var w rules.ActivityWeights
	if t.Pesos.AtividadeFisica != nil {
		w = *t.Pesos.AtividadeFisica
	}
	value := WeightedMean(map[string]float64{
		"intensidade":     float64(intensidade),
		"duracao":         float64(duracao),
		"estimulo_mental": float64(estimulo),
	}, w.Map(), DefaultRange)

	chosen := ChooseFunctions(a.Funcoes, a.FuncaoPrincipal)
	suggestions := suggestionsFor(chosen)

	facts := ActivityFacts{
		Intensidade:       intensidade,
		Duracao:           duracao,
		EstimuloMental:    estimulo,
		FuncoesEscolhidas: chosen,
		Sugestoes:         suggestions,
		NivelFisicoTxt:    LevelLabel(intensidade),
		MinutosDia:        mins,
		DuracaoTxt:        DurationPhrase(mins),
		ExigenciaCogTxt:   LevelLabel(estimulo),
		SugestoesTxt:      textutil.JoinPT(suggestions),
	}

	labels := make([]string, 0, len(chosen))
	for _, f := range chosen {
		labels = append(labels, FunctionLabel(f))
	}
	facts.FuncaoTxt = joinAnd(labels)
	facts.PerfilTxt = facts.FuncaoTxt
	facts.PerfilLabel = profileLabel(len(labels))
	facts.AtivTxtTrailer = activityTrailer(facts.FuncaoTxt, facts.SugestoesTxt, len(labels))

	return ActivityScore{
		Value: value,
		Facts: facts,
		Text:  activityText(name, facts),
	}
}

// maxMental returns the highest mental value across functions, or
// rules.DefaultMental when there are none.
func maxMental(t *rules.RuleTable, functions []string) int {
	if len(functions) == 0 {
		return rules.DefaultMental
	}
	best := t.Mental(functions[0])
	for _, f := range functions[1:] {
		if v := t.Mental(f); v > best {
			best = v
		}
	}
	return best
}

// ChooseFunctions selects up to two profile functions: the preferred one when
// it is listed (otherwise the first listed), plus the first distinct function
// after it. Empty codes are never chosen.
func ChooseFunctions(functions []string, preferred string) []string {
	primary := ""
	switch {
	case preferred != "" && contains(functions, preferred):
		primary = preferred
	case len(functions) > 0:
		primary = functions[0]
	}

	chosen := []string{}
	if primary != "" {
		chosen = append(chosen, primary)
	}
	for _, f := range functions {
		if f != "" && f != primary {
			chosen = append(chosen, f)
			break
		}
	}
	return chosen
}

// suggestionsFor collects the canonicalized suggestion tokens of the chosen
// functions, deduplicated in first-seen order.
func suggestionsFor(chosen []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, f := range chosen {
		phrase, ok := ActivitySuggestion(f)
		if !ok {
			continue
		}
		for _, tok := range SuggestionTokens(phrase) {
			if !seen[tok] {
				seen[tok] = true
				out = append(out, tok)
			}
		}
	}
	return out
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
