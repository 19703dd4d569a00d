package scoring

import (
	"fmt"
	"strings"
)

// The composers below render facts into fixed sentences. Emphasis is marked
// with <strong> tags, which the page templates embed verbatim.

const (
	profileLabelOne  = "Seu perfil/função típica é"
	profileLabelMany = "Seus perfis/funções típicas são"
)

func profileLabel(n int) string {
	if n > 1 {
		return profileLabelMany
	}
	return profileLabelOne
}

// joinAnd joins function labels with " e " (at most two are chosen).
func joinAnd(items []string) string {
	return strings.Join(items, " e ")
}

// activityTrailer is the punctuation and activity clause that follows the
// function name. It is "" when no function was chosen.
func activityTrailer(funcaoTxt, sugestoesTxt string, n int) string {
	if funcaoTxt == "" {
		return ""
	}
	if sugestoesTxt == "" {
		return "."
	}
	lead := ", para o qual recomendam-se <strong>"
	if n > 1 {
		lead = ", para as quais recomendam-se <strong>"
	}
	return lead + sugestoesTxt + "</strong>."
}

func activityText(name string, f ActivityFacts) string {
	mins := ""
	if f.MinutosDia != nil {
		mins = fmt.Sprintf(" (≈%d min/dia)", *f.MinutosDia)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Os cães da raça %s costumam apresentar "+
		"<strong>nível de energia física %s</strong>, "+
		"necessitando de atividades de <strong>%s</strong>%s "+
		"e de <strong>exigência cognitiva %s</strong>.",
		name, f.NivelFisicoTxt, f.DuracaoTxt, mins, f.ExigenciaCogTxt)

	if f.FuncaoTxt != "" {
		fmt.Fprintf(&b, " %s de <strong>%s</strong>%s", f.PerfilLabel, f.FuncaoTxt, f.AtivTxtTrailer)
	}
	return b.String()
}

func groomingText(name string, f GroomingFacts) string {
	seasonal := ""
	if f.PicosSazonais {
		seasonal = seasonalClause
	}
	under := ""
	if f.SubpeloTxt != "" {
		under = " — " + f.SubpeloTxt
	}
	return fmt.Sprintf("Para os cães da raça %s, recomenda-se <strong>%s</strong> "+
		"(<strong>%s</strong>), devido a sua pelagem %s; "+
		"eles apresentam <strong>queda de pelos %s</strong>%s%s; "+
		"e <strong>%s</strong>.",
		name, f.EsforcoTxt, f.EscovacaoTxt, f.PelagemTxt, f.QuedaNivelTxt, seasonal, under, f.TosaTxt)
}

func climateText(name string, f ClimateFacts) string {
	return fmt.Sprintf("No clima <strong>%s</strong>, os cães da raça %s apresentam "+
		"<strong>tolerância ao calor %s</strong>, "+
		"<strong>tolerância à umidade %s</strong> e "+
		"<strong>adaptam-se melhor a %s</strong>.",
		f.PerfilTxt, name, f.ToleranciaCalorTxt, f.ToleranciaUmidadeTxt, f.AdaptacaoEspacoTxt)
}
