package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/textutil"
)

// ErrMissingTemplate is returned when a page template was not found.
var ErrMissingTemplate = errors.New("template not found")

// Page template names.
const (
	TemplateHome    = "index.html"
	TemplateList    = "lista-racas.html"
	TemplateDetail  = "detalhe-raca.html"
	TemplateCompare = "comparar.html"
)

// StaticPage maps a template to its output path.
type StaticPage struct {
	Template string
	Output   string
}

// StaticPages are rendered with the shared partials only.
var StaticPages = []StaticPage{
	{Template: "sobre.html", Output: "sobre/index.html"},
	{Template: "guia-responsavel.html", Output: "guia-responsavel/index.html"},
	{Template: "acessibilidade.html", Output: "acessibilidade/index.html"},
	{Template: "privacidade.html", Output: "privacidade/index.html"},
	{Template: "sitemap.html", Output: "sitemap.html"},
	{Template: "404.html", Output: "404.html"},
}

// Page is a rendered output file, Path relative to the output directory.
type Page struct {
	Path string
	HTML string
}

// Scored pairs a breed with its computed scores.
type Scored struct {
	Breed  breed.Breed
	Scores scoring.BreedScores
}

// Renderer renders pages from the loaded templates.
type Renderer struct {
	Base      string
	Partials  Partials
	Templates map[string]*Template
	Rules     *rules.RuleTable
	Aliases   breed.Aliases
}

// LoadTemplates reads discovered template files keyed by relative name.
func LoadTemplates(paths map[string]string) (map[string]*Template, error) {
	templates := make(map[string]*Template, len(paths))
	for name, path := range paths {
		t, err := ReadTemplate(name, path)
		if err != nil {
			return nil, err
		}
		templates[name] = t
	}
	return templates, nil
}

func (r *Renderer) template(name string) (*Template, error) {
	t, ok := r.Templates[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingTemplate)
	}
	return t, nil
}

// vars returns the variables shared by every page plus extra.
func (r *Renderer) vars(extra map[string]string) map[string]string {
	v := map[string]string{
		"HEAD_BASE":   r.Partials.HeadBase,
		"baseUrl":     r.Base,
		"SITE_HEADER": r.Partials.Header,
		"SITE_FOOTER": r.Partials.Footer,
	}
	for k, val := range extra {
		v[k] = val
	}
	return v
}

func (r *Renderer) render(name, output string, extra map[string]string) (Page, error) {
	t, err := r.template(name)
	if err != nil {
		return Page{}, err
	}
	return Page{Path: output, HTML: t.SafeSubstitute(r.vars(extra))}, nil
}

// DetailURL returns the absolute URL of a breed detail page.
func (r *Renderer) DetailURL(slug string) string {
	return r.Base + "/racas/" + slug + ".html"
}

// DetailPage renders racas/<slug>.html.
func (r *Renderer) DetailPage(s Scored) (Page, error) {
	b := s.Breed
	slug := b.SlugOrDefault()
	url := r.DetailURL(slug)
	group := b.Atributos.FCIGrupo.String()

	crumb, err := BreadcrumbDetail(r.Base, b.Nome, url)
	if err != nil {
		return Page{}, err
	}
	thing, err := BreedJSONLD(b, url)
	if err != nil {
		return Page{}, err
	}

	aka := ""
	if aliases := r.Aliases.For(slug); len(aliases) > 0 {
		aka = textutil.Attr(textutil.JoinPT(aliases))
	}
	fciCode := b.FCICodigo.String()
	if fciCode == "" {
		fciCode = placeholder
	}
	origem := b.Origem
	if origem == "" {
		origem = placeholder
	}
	m := b.Medidas

	return r.render(TemplateDetail, "racas/"+slug+".html", map[string]string{
		"url":                    url,
		"slug":                   slug,
		"nome":                   textutil.Attr(b.Nome),
		"lead":                   b.Summary(),
		"origem":                 textutil.Attr(origem),
		"fci_grupo":              GroupBadge(group),
		"fci_descricao":          r.Rules.GroupName(group),
		"fci_codigo":             textutil.Attr(fciCode),
		"porte_label":            breed.SizeLabel(b.Atributos.SizeSlug()),
		"porte_slug":             b.Atributos.SizeSlug(),
		"altura_texto_html":      FormatMF(m.AlturaCM["macho"].String(), m.AlturaCM["femea"].String(), "cm"),
		"peso_texto_html":        FormatMF(m.PesoKG["macho"].String(), m.PesoKG["femea"].String(), "kg"),
		"vida_texto":             b.LifeSpan() + " anos",
		"atividade":              strconv.Itoa(s.Scores.Activity.Value),
		"grooming":               strconv.Itoa(s.Scores.Grooming.Value),
		"clima":                  strconv.Itoa(s.Scores.Climate.Value),
		"detalhe_atividade_html": s.Scores.Activity.Text,
		"detalhe_grooming_html":  s.Scores.Grooming.Text,
		"detalhe_clima_html":     s.Scores.Climate.Text,
		"aka_html":               aka,
		"POPULARIDADE_BLOCK":     RenderPopBlock(b),
		"FOTO_BLOCK":             RenderFotoBlock(r.Base, b),
		"jsonld_breadcrumb":      crumb,
		"jsonld_breed":           thing,
	})
}

// ListPage renders racas/index.html with cards sorted by name.
func (r *Renderer) ListPage(breeds []breed.Breed) (Page, error) {
	sorted := append([]breed.Breed(nil), breeds...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Nome < sorted[j].Nome
	})

	cards := make([]string, 0, len(sorted))
	for _, b := range sorted {
		cards = append(cards, RenderCard(r.Base, b, r.Aliases.For(b.SlugOrDefault())))
	}

	crumb, err := BreadcrumbList(r.Base)
	if err != nil {
		return Page{}, err
	}
	return r.render(TemplateList, "racas/index.html", map[string]string{
		"LISTA_RACAS_ITEMS":      strings.Join(cards, "\n"),
		"jsonld_breadcrumb_list": crumb,
	})
}

// ComparePage renders comparar/index.html.
func (r *Renderer) ComparePage() (Page, error) {
	crumb, err := BreadcrumbCompare(r.Base)
	if err != nil {
		return Page{}, err
	}
	return r.render(TemplateCompare, "comparar/index.html", map[string]string{
		"jsonld_breadcrumb_compare": crumb,
	})
}

// Number of breeds in each home page ranking.
const topRanked = 5

// HomePage renders index.html with the Brazil and global top-5 rankings.
func (r *Renderer) HomePage(breeds []breed.Breed) (Page, error) {
	return r.render(TemplateHome, "index.html", map[string]string{
		"BR_TOP5_ITEMS":     RenderRankItems(r.Base, TopN(breeds, "br", topRanked)),
		"GLOBAL_TOP5_ITEMS": RenderRankItems(r.Base, TopN(breeds, "global", topRanked)),
	})
}

// StaticPages renders the institutional pages.
func (r *Renderer) StaticPages() ([]Page, error) {
	pages := make([]Page, 0, len(StaticPages))
	for _, sp := range StaticPages {
		p, err := r.render(sp.Template, sp.Output, nil)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// RenderAll renders every page: one detail page per breed, then the list,
// compare, home and static pages.
func (r *Renderer) RenderAll(scored []Scored) ([]Page, error) {
	pages := make([]Page, 0, len(scored)+3+len(StaticPages))
	breeds := make([]breed.Breed, 0, len(scored))
	for _, s := range scored {
		p, err := r.DetailPage(s)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.Breed.Nome, err)
		}
		pages = append(pages, p)
		breeds = append(breeds, s.Breed)
	}

	list, err := r.ListPage(breeds)
	if err != nil {
		return nil, err
	}
	compare, err := r.ComparePage()
	if err != nil {
		return nil, err
	}
	home, err := r.HomePage(breeds)
	if err != nil {
		return nil, err
	}
	pages = append(pages, list, compare, home)

	static, err := r.StaticPages()
	if err != nil {
		return nil, err
	}
	return append(pages, static...), nil
}

// WritePages writes pages under outDir, creating directories as needed.
func WritePages(outDir string, pages []Page) error {
	for _, p := range pages {
		path := filepath.Join(outDir, filepath.FromSlash(p.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", p.Path, err)
		}
		if err := os.WriteFile(path, []byte(p.HTML), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}
	return nil
}
