package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
)

// Profile is the environment profile selecting the climate weight set. It is
// resolved once per run and passed explicitly to Climate.
type Profile struct {
	Name    string
	Weights rules.ClimateWeights
}

// ResolveProfile picks the profile (override, else the table's
// perfil_ambiente) and its weights.
func ResolveProfile(t *rules.RuleTable, override string) (Profile, error) {
	name := t.Profile(override)
	w, err := t.ClimateWeights(name)
	if err != nil {
		return Profile{}, fmt.Errorf("resolving environment profile: %w", err)
	}
	return Profile{Name: name, Weights: w}, nil
}

// Label returns the profile name as shown in text ("-" becomes " ").
func (p Profile) Label() string {
	return strings.ReplaceAll(p.Name, "-", " ")
}

// Coats that lower heat tolerance.
var heatPenaltyCoats = map[string]bool{
	breed.CoatLonga:        true,
	breed.CoatEncaracolada: true,
	breed.CoatDuplaLonga:   true,
}

// Coats that lower humidity tolerance.
var humidityPenaltyCoats = map[string]bool{
	breed.CoatDuplaLonga: true,
	breed.CoatLonga:      true,
}

// HeatTolerance scores heat tolerance from base 3.
func HeatTolerance(a breed.Attributes) int {
	s := 3
	if a.Braquicefalico {
		s -= 2
	}
	if a.DobrasCutaneas {
		s--
	}
	if heatPenaltyCoats[a.PelagemTipo] {
		s--
	}
	if a.Subpelo == breed.UndercoatDenso {
		s--
	}
	if a.HasOrigin(breed.ClimateTropical) {
		s++
	}
	if a.HasOrigin(breed.ClimateFrio) {
		s--
	}
	return clampLevel(s)
}

// HumidityTolerance scores humidity tolerance from base 3. It has only
// penalties; origin climate does not raise it.
func HumidityTolerance(a breed.Attributes) int {
	s := 3
	if a.DobrasCutaneas {
		s--
	}
	if a.Subpelo == breed.UndercoatDenso {
		s--
	}
	if humidityPenaltyCoats[a.PelagemTipo] {
		s--
	}
	return clampLevel(s)
}

// SpaceNeed combines the size base with the final activity score.
func SpaceNeed(size string, activity int) float64 {
	return clampFloat(SpaceNeedBase(size) + float64(activity-3)*0.5)
}

// Climate computes the climate/environment sub-score. activity is the final
// Activity value of the same breed, so Activity must run first.
func Climate(p Profile, name string, a breed.Attributes, activity int) ClimateScore {
	calor := HeatTolerance(a)
	umidade := HumidityTolerance(a)
	need := SpaceNeed(a.Porte, activity)
	espaco := clampFloat(5 - need)

	value := WeightedMean(map[string]float64{
		"calor":   float64(calor),
		"umidade": float64(umidade),
		"espaco":  espaco,
	}, p.Weights.Map(), DefaultRange)

	facts := ClimateFacts{
		Calor:                calor,
		Umidade:              umidade,
		Espaco:               espaco,
		NecessidadeEspaco:    need,
		PerfilTxt:            p.Label(),
		ToleranciaCalorTxt:   LevelLabel(calor),
		ToleranciaUmidadeTxt: LevelLabel(umidade),
		AdaptacaoEspacoTxt:   SpaceLabel(espaco),
	}

	return ClimateScore{
		Value: value,
		Facts: facts,
		Text:  climateText(name, facts),
	}
}
