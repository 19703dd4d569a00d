package scoring

import (
	"strings"
)

// Each lookup below is a total function over its category with an explicit
// default branch; unknown values never fail.

// LevelLabel names a 1-5 level. Values outside 1..5 fall back to "moderada".
func LevelLabel(n int) string {
	switch n {
	case 1:
		return "muito baixa"
	case 2:
		return "baixa"
	case 3:
		return "moderada"
	case 4:
		return "alta"
	case 5:
		return "muito alta"
	default:
		return "moderada"
	}
}

// DurationPhrase describes daily exercise minutes using the same breakpoints
// as MinutesToScale.
func DurationPhrase(mins *int) string {
	switch MinutesToScale(mins) {
	case 5:
		return "longa duração"
	case 4:
		return "duração moderada a longa"
	case 2:
		return "duração curta a moderada"
	case 1:
		return "curta duração"
	default:
		return "duração moderada"
	}
}

// FunctionLabel names a working function code.
func FunctionLabel(code string) string {
	switch code {
	case "herding":
		return "pastoreio"
	case "retriever":
		return "recolhedor de caça"
	case "pointer":
		return "cão de aponte"
	case "terrier":
		return "controle de pragas"
	case "scent":
		return "farejador"
	case "guard":
		return "guarda"
	case "water":
		return "cão d'água"
	case "sight":
		return "cão de caça à vista"
	case "companhia":
		return "companhia"
	default:
		return strings.ReplaceAll(code, "_", " ")
	}
}

// ActivitySuggestion returns the suggested activities phrase of a function.
// ok is false when the function has no registered suggestion.
func ActivitySuggestion(code string) (phrase string, ok bool) {
	switch code {
	case "herding":
		return "pastoreio simulado, obediência e truques", true
	case "retriever":
		return "aportes (buscar e trazer) e natação", true
	case "pointer":
		return "jogos de aponte e rastros curtos", true
	case "terrier":
		return "brincadeiras de escavação controladas e caça ao brinquedo", true
	case "scent":
		return "jogos de faro/caça ao tesouro em casa ou quintal", true
	case "guard":
		return "obediência, autocontrole e socialização orientada", true
	case "water":
		return "natação e brincadeiras com água com supervisão", true
	case "sight":
		return "corridas controladas (lure) e busca visual por alvos", true
	case "companhia":
		return "passeios leves e interação social diária", true
	default:
		return "", false
	}
}

// Canonical suggestion tokens.
const (
	SuggestionAquatic  = "atividades aquáticas supervisionadas"
	SuggestionRetrieve = "aportes (buscar e trazer)"
)

// SuggestionTokens splits a suggestion phrase into lowercase tokens on commas
// and on the conjunction " e ", never inside parentheses. Water activities
// and retrieving canonicalize to SuggestionAquatic and SuggestionRetrieve.
func SuggestionTokens(phrase string) []string {
	s := strings.ToLower(phrase)
	s = strings.TrimSpace(strings.ReplaceAll(s, "com supervisão", ""))

	var tokens []string
	for _, part := range splitOutsideParens(s) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.Contains(part, "natação"), strings.Contains(part, "água"):
			tokens = append(tokens, SuggestionAquatic)
		case strings.Contains(part, "aportes"), strings.Contains(part, "apporte"), strings.Contains(part, "buscar e trazer"):
			tokens = append(tokens, SuggestionRetrieve)
		default:
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// splitOutsideParens splits s on "," and " e " at parenthesis depth zero.
func splitOutsideParens(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); {
		switch {
		case s[i] == '(':
			depth++
		case s[i] == ')' && depth > 0:
			depth--
		case depth == 0 && s[i] == ',':
			parts = append(parts, s[start:i])
			start = i + 1
		case depth == 0 && strings.HasPrefix(s[i:], " e "):
			parts = append(parts, s[start:i])
			i += len(" e ")
			start = i
			continue
		}
		i++
	}
	return append(parts, s[start:])
}

// BrushingEffortLabel names the brushing effort base value.
func BrushingEffortLabel(esc int) string {
	switch esc {
	case 1:
		return "escovação simples"
	case 3:
		return "escovação cuidadosa"
	case 4:
		return "escovação intensiva"
	default:
		return "escovação regular"
	}
}

// BrushingFrequency returns the brushing frequency for a coat type. It is
// keyed off the coat itself, not the brushing score.
func BrushingFrequency(coat string) string {
	switch coat {
	case "sem_pelo":
		return "1x/semana ou conforme necessário"
	case "curta":
		return "1–2x/semana"
	case "dupla_curta", "media":
		return "2–3x/semana"
	case "longa":
		return "3–5x/semana"
	case "encaracolada":
		return "diária ou em dias alternados"
	case "dupla_longa":
		return "diária"
	default:
		return "2–3x/semana"
	}
}

// CoatLabel names a coat type.
func CoatLabel(coat string) string {
	switch coat {
	case "sem_pelo":
		return "sem pelo"
	case "media":
		return "média"
	case "dupla_curta":
		return "dupla curta"
	case "dupla_longa":
		return "dupla longa"
	case "curta", "longa", "encaracolada":
		return coat
	default:
		return strings.ReplaceAll(coat, "_", " ")
	}
}

const seasonalClause = " com picos sazonais"

// SeasonalShedding reports whether the seasonal shedding level bumps the
// shedding value and adds the seasonal-peaks clause.
func SeasonalShedding(level string) bool {
	return level == "moderado" || level == "alto"
}

// SheddingLevelLabel names the shedding level implied by undercoat density.
func SheddingLevelLabel(undercoat string) string {
	switch undercoat {
	case "nenhum":
		return "baixa"
	case "denso":
		return "alta"
	default:
		return "moderada"
	}
}

// UndercoatLabel describes the undercoat, or "" for unknown densities.
func UndercoatLabel(undercoat string) string {
	switch undercoat {
	case "nenhum":
		return "não possui subpelo"
	case "leve":
		return "possui subpelo leve"
	case "denso":
		return "possui subpelo denso"
	default:
		return ""
	}
}

// TrimLabel describes the trimming requirement. It is keyed off the
// categorical trim need, not the trim score.
func TrimLabel(need string) string {
	switch need {
	case "ocasional":
		return "requer tosa ocasional"
	case "regular_8_10":
		return "requer tosa regular (a cada 8–10 semanas)"
	case "regular_4_6":
		return "requer tosa frequente (a cada 4–6 semanas)"
	default:
		return "não requer tosa"
	}
}

// SpaceNeedBase returns the base space need of a size category.
func SpaceNeedBase(size string) float64 {
	switch size {
	case "pequeno":
		return 1.5
	case "grande":
		return 4
	default:
		return 3
	}
}

// SpaceLabel names the environment a breed adapts to best, by the space
// adaptability score.
func SpaceLabel(espaco float64) string {
	switch {
	case espaco >= 4.5:
		return "apartamento pequeno (≤ 50 m²), com passeios diários e enriquecimento"
	case espaco >= 3.6:
		return "apartamento médio (50–80 m²)"
	case espaco >= 2.6:
		return "apartamento amplo ou casa pequena"
	case espaco >= 1.6:
		return "casa com quintal"
	default:
		return "área ampla (quintal grande/chácara)"
	}
}
