package breed

// Attributes is the fully defaulted view of a breed's attributes consumed by
// the calculators.
type Attributes struct {
	FCIGrupo        string // "" when absent
	Porte           string
	Braquicefalico  bool
	DobrasCutaneas  bool
	PelagemTipo     string
	Subpelo         string
	SheddingEstacao string
	NecessitaTosa   string
	Funcoes         []string // never nil
	FuncaoPrincipal string   // "" when absent
	OrigemClima     map[string]bool
}

// Defaults applied by Normalize.
const (
	DefaultSize      = SizeMedio
	DefaultCoat      = CoatCurta
	DefaultUndercoat = UndercoatNenhum
	DefaultShedding  = SheddingBaixo
	DefaultTrim      = TrimNao
)

// Normalize applies the documented defaults for absent, null or empty fields.
// It never fails.
func Normalize(raw RawAttributes) Attributes {
	attrs := Attributes{
		FCIGrupo:        raw.FCIGrupo.String(),
		Porte:           orDefault(raw.Porte, DefaultSize),
		Braquicefalico:  raw.Braquicefalico != nil && *raw.Braquicefalico,
		DobrasCutaneas:  raw.DobrasCutaneas != nil && *raw.DobrasCutaneas,
		PelagemTipo:     orDefault(raw.PelagemTipo, DefaultCoat),
		Subpelo:         orDefault(raw.Subpelo, DefaultUndercoat),
		SheddingEstacao: orDefault(raw.SheddingEstacao, DefaultShedding),
		NecessitaTosa:   orDefault(raw.NecessitaTosa, DefaultTrim),
		Funcoes:         make([]string, 0, len(raw.Funcoes)),
		FuncaoPrincipal: orDefault(raw.FuncaoPrincipal, ""),
		OrigemClima:     make(map[string]bool, len(raw.OrigemClima)),
	}
	attrs.Funcoes = append(attrs.Funcoes, raw.Funcoes...)
	for _, c := range raw.OrigemClima {
		attrs.OrigemClima[c] = true
	}
	return attrs
}

// HasOrigin reports whether climate is one of the breed's origin climates.
func (a Attributes) HasOrigin(climate string) bool {
	return a.OrigemClima[climate]
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
