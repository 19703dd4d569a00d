package scoring

// Score ranges.
const (
	MinScore = 0
	MaxScore = 5
)

// ActivityFacts is the structured record behind the activity score. Keys are
// consumed by page badges and the client JSON.
type ActivityFacts struct {
	Intensidade       int      `json:"intensidade"`
	Duracao           int      `json:"duracao"`
	EstimuloMental    int      `json:"estimulo_mental"`
	FuncoesEscolhidas []string `json:"funcoes_escolhidas"`
	Sugestoes         []string `json:"sugestoes"`

	NivelFisicoTxt  string `json:"nivel_fisico_txt"`
	MinutosDia      *int   `json:"minutos_dia"`
	DuracaoTxt      string `json:"duracao_txt"`
	ExigenciaCogTxt string `json:"exigencia_cog_txt"`
	PerfilTxt       string `json:"perfil_txt"`
	SugestoesTxt    string `json:"sugestoes_txt"`
	PerfilLabel     string `json:"perfil_label"`
	FuncaoTxt       string `json:"funcao_txt"`
	AtivTxtTrailer  string `json:"ativ_txt_trailer"`
}

// ActivityScore is the activity sub-score of one breed.
type ActivityScore struct {
	Value int
	Facts ActivityFacts
	Text  string
}

// GroomingFacts is the structured record behind the grooming score.
type GroomingFacts struct {
	Escovacao int `json:"escovacao"`
	Shedding  int `json:"shedding"`
	Tosa      int `json:"tosa"`

	PicosSazonais bool `json:"picos_sazonais"`

	EsforcoTxt    string `json:"esforco_txt"`
	EscovacaoTxt  string `json:"escovacao_txt"`
	PelagemTxt    string `json:"pelagem_txt"`
	QuedaNivelTxt string `json:"queda_nivel_txt"`
	QuedaTxt      string `json:"queda_txt"`
	SubpeloTxt    string `json:"subpelo_txt"`
	TosaTxt       string `json:"tosa_txt"`
}

// GroomingScore is the grooming sub-score of one breed.
type GroomingScore struct {
	Value int
	Facts GroomingFacts
	Text  string
}

// ClimateFacts is the structured record behind the climate score.
type ClimateFacts struct {
	Calor             int     `json:"calor"`
	Umidade           int     `json:"umidade"`
	Espaco            float64 `json:"espaco"`
	NecessidadeEspaco float64 `json:"necessidade_espaco"`

	PerfilTxt            string `json:"perfil_txt"`
	ToleranciaCalorTxt   string `json:"tolerancia_calor_txt"`
	ToleranciaUmidadeTxt string `json:"tolerancia_umidade_txt"`
	AdaptacaoEspacoTxt   string `json:"adaptacao_espaco_txt"`
}

// ClimateScore is the climate/environment sub-score of one breed.
type ClimateScore struct {
	Value int
	Facts ClimateFacts
	Text  string
}

// BreedScores bundles the three sub-scores of a breed.
type BreedScores struct {
	Activity ActivityScore
	Grooming GroomingScore
	Climate  ClimateScore
}
