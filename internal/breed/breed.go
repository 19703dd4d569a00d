// Package breed holds the breed data set and the attribute normalizer that
// turns a breed's raw, partially filled attributes into the canonical inputs
// of the scoring calculators.
package breed

import (
	"strings"

	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/textutil"
	"github.com/dotcommander/racas/internal/types"
)

// Size categories (porte).
const (
	SizeMini    = "mini"
	SizePequeno = "pequeno"
	SizeMedio   = "medio"
	SizeGrande  = "grande"
	SizeGigante = "gigante"
)

// Coat types (pelagem_tipo).
const (
	CoatSemPelo      = "sem_pelo"
	CoatCurta        = "curta"
	CoatMedia        = "media"
	CoatLonga        = "longa"
	CoatEncaracolada = "encaracolada"
	CoatDuplaCurta   = "dupla_curta"
	CoatDuplaLonga   = "dupla_longa"
)

// Undercoat densities (subpelo).
const (
	UndercoatNenhum = "nenhum"
	UndercoatLeve   = "leve"
	UndercoatDenso  = "denso"
)

// Seasonal shedding levels (shedding_estacao).
const (
	SheddingBaixo     = "baixo"
	SheddingModerado  = "moderado"
	SheddingAlto      = "alto"
	SheddingExplosivo = "explosivo"
)

// Trim needs (necessita_tosa).
const (
	TrimNao         = "nao"
	TrimOcasional   = "ocasional"
	TrimRegular8a10 = "regular_8_10"
	TrimRegular4a6  = "regular_4_6"
)

// Climate origins (origem_clima).
const (
	ClimateTropical = "tropical"
	ClimateFrio     = "frio"
	ClimateDeserto  = "deserto"
)

// Measures holds the free-text body measurements of a breed.
type Measures struct {
	AlturaCM        map[string]types.FlexString `json:"altura_cm"`
	PesoKG          map[string]types.FlexString `json:"peso_kg"`
	ExpectativaAnos types.FlexString            `json:"expectativa_anos"`
}

// Notes holds editorial notes.
type Notes struct {
	Resumo string `json:"resumo"`
}

// Breed is one record of racas.json.
type Breed struct {
	Nome         string           `json:"nome"`
	Slug         string           `json:"slug"`
	Origem       string           `json:"origem"`
	FCICodigo    types.FlexString `json:"fci_codigo"`
	Foto         string           `json:"foto"`
	FotoW        int              `json:"foto_w"`
	FotoH        int              `json:"foto_h"`
	FotoCredito  string           `json:"foto_credito"`
	Lead         string           `json:"lead"`
	Notas        Notes            `json:"notas"`
	Medidas      Measures         `json:"medidas"`
	Popularidade map[string]any   `json:"popularidade"`
	Atributos    RawAttributes    `json:"atributos"`
}

// SlugOrDefault returns the explicit slug, or one derived from the name.
func (b Breed) SlugOrDefault() string {
	if s := strings.TrimSpace(b.Slug); s != "" {
		return s
	}
	return textutil.Slugify(b.Nome)
}

// Summary returns the lead text, falling back to the editorial summary.
func (b Breed) Summary() string {
	if b.Lead != "" {
		return b.Lead
	}
	return b.Notas.Resumo
}

// LifeSpan returns the life expectancy text, or "—" when absent.
func (b Breed) LifeSpan() string {
	if b.Medidas.ExpectativaAnos == "" {
		return "—"
	}
	return b.Medidas.ExpectativaAnos.String()
}

// Popularity returns the popularity value for key ("br" or "global") clamped
// to 0..100. The second result is false when the value is missing or not a
// number.
func (b Breed) Popularity(key string) (int, bool) {
	v, ok := b.Popularidade[key].(float64)
	if !ok {
		return 0, false
	}
	n := int(v)
	switch {
	case n < 0:
		n = 0
	case n > 100:
		n = 100
	}
	return n, true
}

// RawAttributes is the atributos mapping as found in the data file. Every
// field may be absent or null.
type RawAttributes struct {
	FCIGrupo        rules.GroupID `json:"fci_grupo"`
	Porte           *string       `json:"porte"`
	Braquicefalico  *bool         `json:"braquicefalico"`
	DobrasCutaneas  *bool         `json:"dobras_cutaneas"`
	PelagemTipo     *string       `json:"pelagem_tipo"`
	Subpelo         *string       `json:"subpelo"`
	SheddingEstacao *string       `json:"shedding_estacao"`
	NecessitaTosa   *string       `json:"necessita_tosa"`
	Funcoes         []string      `json:"funcoes"`
	FuncaoPrincipal *string       `json:"funcao_principal"`
	OrigemClima     []string      `json:"origem_clima"`
}

// SizeSlug returns the lowercased size as written in the data, or "".
func (r RawAttributes) SizeSlug() string {
	if r.Porte == nil {
		return ""
	}
	return strings.ToLower(*r.Porte)
}

// SizeLabel returns the display label of a size slug, or "—" when unknown.
func SizeLabel(slug string) string {
	switch strings.ToLower(slug) {
	case SizeMini:
		return "Mini"
	case SizePequeno:
		return "Pequeno"
	case SizeMedio:
		return "Médio"
	case SizeGrande:
		return "Grande"
	case SizeGigante:
		return "Gigante"
	default:
		return "—"
	}
}
