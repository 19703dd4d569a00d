package scoring

import (
	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
)

// Grooming computes the coat care sub-score.
//
// Brushing frequency and the trim phrase are looked up from the categorical
// coat and trim fields, not from the numeric components.
func Grooming(t *rules.RuleTable, name string, a breed.Attributes) GroomingScore {
	esc := t.Brushing(a.PelagemTipo)
	shed := t.Shedding(a.Subpelo)
	seasonal := SeasonalShedding(a.SheddingEstacao)
	if seasonal {
		shed = clampLevel(shed + 1)
	}
	tosa := t.Trim(a.NecessitaTosa)

	var w rules.GroomingWeights
	if t.Pesos.HigienePelagem != nil {
		w = *t.Pesos.HigienePelagem
	}
	value := WeightedMean(map[string]float64{
		"escovacao": float64(esc),
		"shedding":  float64(shed),
		"tosa":      float64(tosa),
	}, w.Map(), DefaultRange)

	nivel := SheddingLevelLabel(a.Subpelo)
	queda := nivel
	if seasonal {
		queda += seasonalClause
	}

	facts := GroomingFacts{
		Escovacao:     esc,
		Shedding:      shed,
		Tosa:          tosa,
		PicosSazonais: seasonal,
		EsforcoTxt:    BrushingEffortLabel(esc),
		EscovacaoTxt:  BrushingFrequency(a.PelagemTipo),
		PelagemTxt:    CoatLabel(a.PelagemTipo),
		QuedaNivelTxt: nivel,
		QuedaTxt:      queda,
		SubpeloTxt:    UndercoatLabel(a.Subpelo),
		TosaTxt:       TrimLabel(a.NecessitaTosa),
	}

	return GroomingScore{
		Value: value,
		Facts: facts,
		Text:  groomingText(name, facts),
	}
}
