// Package rules holds the rule table that drives breed scoring: per-category
// base values, per-domain weights and the environment profile selecting the
// climate weight set.
//
// A RuleTable is loaded once per run and treated as read-only afterwards, so a
// single table may be shared by concurrent scorers.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dotcommander/racas/internal/types"
)

// Fallback values used when a category key is absent from the table.
const (
	DefaultIntensity = 3
	DefaultMinutes   = 60
	DefaultMental    = 2
	DefaultGrooming  = 1
	DefaultGroupName = "—"
)

var (
	// ErrMissingWeights is returned when a weight category is absent.
	ErrMissingWeights = errors.New("missing weight set")
	// ErrUnknownProfile is returned when no climate weight set exists for the
	// selected environment profile.
	ErrUnknownProfile = errors.New("unknown environment profile")
)

// GroupID is an FCI group key. Data files carry it either as a number or as a
// string; both decode to the same key.
type GroupID = types.FlexString

// ActivityWeights weights the three physical activity components.
type ActivityWeights struct {
	Intensidade    float64 `json:"intensidade"`
	Duracao        float64 `json:"duracao"`
	EstimuloMental float64 `json:"estimulo_mental"`
}

// Map returns the weights keyed by component name.
func (w ActivityWeights) Map() map[string]float64 {
	return map[string]float64{
		"intensidade":     w.Intensidade,
		"duracao":         w.Duracao,
		"estimulo_mental": w.EstimuloMental,
	}
}

// GroomingWeights weights the three coat care components.
type GroomingWeights struct {
	Escovacao float64 `json:"escovacao"`
	Shedding  float64 `json:"shedding"`
	Tosa      float64 `json:"tosa"`
}

// Map returns the weights keyed by component name.
func (w GroomingWeights) Map() map[string]float64 {
	return map[string]float64{
		"escovacao": w.Escovacao,
		"shedding":  w.Shedding,
		"tosa":      w.Tosa,
	}
}

// ClimateWeights weights heat, humidity and space adaptability.
type ClimateWeights struct {
	Calor   float64 `json:"calor"`
	Umidade float64 `json:"umidade"`
	Espaco  float64 `json:"espaco"`
}

// Map returns the weights keyed by component name.
func (w ClimateWeights) Map() map[string]float64 {
	return map[string]float64{
		"calor":   w.Calor,
		"umidade": w.Umidade,
		"espaco":  w.Espaco,
	}
}

// Weights groups the weight sets of every scoring domain.
type Weights struct {
	AtividadeFisica *ActivityWeights          `json:"atividade_fisica"`
	HigienePelagem  *GroomingWeights          `json:"higiene_pelagem"`
	ClimaAmbiente   map[string]ClimateWeights `json:"clima_ambiente"`
}

// RuleTable is the scoring configuration loaded from rules.json.
type RuleTable struct {
	FCIBaseIntensidade map[string]int    `json:"fci_base_intensidade"`
	FCIBaseMinutos     map[string]*int   `json:"fci_base_minutos"`
	MentalFuncoes      map[string]int    `json:"mental_funcoes"`
	EscovacaoPelo      map[string]int    `json:"escovacao_pelo"`
	SheddingSubpelo    map[string]int    `json:"shedding_subpelo"`
	TosaNecessidade    map[string]int    `json:"tosa_necessidade"`
	PerfilAmbiente     string            `json:"perfil_ambiente"`
	Pesos              Weights           `json:"pesos"`
	FCIGrupos          map[string]string `json:"fci_grupos"`
}

// Validate checks that every weight category the calculators need is present
// for the given environment profile. An empty profile selects the table's own
// perfil_ambiente.
func (t *RuleTable) Validate(profile string) error {
	if t.Pesos.AtividadeFisica == nil {
		return fmt.Errorf("pesos.atividade_fisica: %w", ErrMissingWeights)
	}
	if t.Pesos.HigienePelagem == nil {
		return fmt.Errorf("pesos.higiene_pelagem: %w", ErrMissingWeights)
	}
	if len(t.Pesos.ClimaAmbiente) == 0 {
		return fmt.Errorf("pesos.clima_ambiente: %w", ErrMissingWeights)
	}
	if _, err := t.ClimateWeights(t.Profile(profile)); err != nil {
		return err
	}
	return nil
}

// Profile resolves the environment profile: an explicit override wins over
// the table's perfil_ambiente.
func (t *RuleTable) Profile(override string) string {
	if override != "" {
		return override
	}
	return t.PerfilAmbiente
}

// Profiles lists the environment profiles that have a climate weight set.
func (t *RuleTable) Profiles() []string {
	out := make([]string, 0, len(t.Pesos.ClimaAmbiente))
	for p := range t.Pesos.ClimaAmbiente {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ClimateWeights returns the climate weight set for profile.
func (t *RuleTable) ClimateWeights(profile string) (ClimateWeights, error) {
	if profile == "" {
		return ClimateWeights{}, fmt.Errorf("perfil_ambiente is empty: %w", ErrUnknownProfile)
	}
	w, ok := t.Pesos.ClimaAmbiente[profile]
	if !ok {
		return ClimateWeights{}, fmt.Errorf("%q (available: %v): %w", profile, t.Profiles(), ErrUnknownProfile)
	}
	return w, nil
}
