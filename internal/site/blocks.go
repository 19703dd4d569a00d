package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/textutil"
)

// photoURL returns the breed photo (or the placeholder) resolved against
// base when it is site-relative.
func photoURL(base, foto string) string {
	if foto == "" {
		foto = defaultPhoto
	}
	if strings.HasPrefix(foto, "/") {
		return base + foto
	}
	return foto
}

// GroupBadge returns "Grupo N", or "—" without a group.
func GroupBadge(group string) string {
	if group == "" {
		return placeholder
	}
	return "Grupo " + group
}

// RenderCard renders one list card. Data attributes feed the client-side
// filters.
func RenderCard(base string, b breed.Breed, aliases []string) string {
	slug := b.SlugOrDefault()
	group := b.Atributos.FCIGrupo.String()
	origem := b.Origem
	if origem == "" {
		origem = placeholder
	}

	var sb strings.Builder
	sb.WriteString("<li class='breed-card' ")
	fmt.Fprintf(&sb, " data-name='%s'", textutil.Attr(b.Nome))
	fmt.Fprintf(&sb, " data-porte='%s'", textutil.Attr(b.Atributos.SizeSlug()))
	fmt.Fprintf(&sb, " data-grupo='%s'", textutil.Attr(group))
	fmt.Fprintf(&sb, " data-alias='%s'>", textutil.Attr(strings.Join(aliases, " | ")))
	sb.WriteString("  <div class='breed-card__media'>")
	fmt.Fprintf(&sb, "    <img src='%s' alt='' loading='lazy' decoding='async' width='480' height='320' />", photoURL(base, b.Foto))
	sb.WriteString("  </div>")
	sb.WriteString("  <div class='breed-card__body'>")
	fmt.Fprintf(&sb, "    <h3 class='breed-card__title'><a href='%s/racas/%s.html'>%s</a></h3>", base, slug, textutil.Attr(b.Nome))
	fmt.Fprintf(&sb, "    <p class='breed-card__meta'>Origem: %s</p>", textutil.Attr(origem))
	fmt.Fprintf(&sb, "    <span class='badge'>%s</span>", textutil.Attr(GroupBadge(group)))
	sb.WriteString("  </div>")
	sb.WriteString("  <div class='breed-card__actions'>")
	fmt.Fprintf(&sb, "    <a class='btn btn--full js-compare-add' data-slug='%s' href='%s/comparar/?add=%s'>+ Comparar</a>", slug, base, slug)
	sb.WriteString("  </div>")
	sb.WriteString("</li>")
	return sb.String()
}

const emptyPopBlock = "<section class='pop'><div class='pop__bars'></div></section>"

// RenderPopBlock renders the Brazil and global popularity bars.
func RenderPopBlock(b breed.Breed) string {
	var rows []string
	for _, item := range []struct{ label, key string }{{"Brasil", "br"}, {"Global", "global"}} {
		v, ok := b.Popularity(item.key)
		if !ok {
			continue
		}
		rows = append(rows, fmt.Sprintf("<div class='pop__row'>"+
			"<span>%s</span>"+
			"<span class='pop__track'><span class='pop__fill' style='inline-size:%d%%'></span></span>"+
			"<span>%d%%</span>"+
			"</div>", textutil.Attr(item.label), v, v))
	}
	if len(rows) == 0 {
		return emptyPopBlock
	}
	return "<section class='pop'><h2 class='visually-hidden'>Popularidade</h2><div class='pop__bars'>" +
		strings.Join(rows, "") + "</div></section>"
}

// Default photo dimensions on detail pages.
const (
	defaultPhotoW = 640
	defaultPhotoH = 426
)

// RenderFotoBlock renders the detail page photo with its credit caption.
func RenderFotoBlock(base string, b breed.Breed) string {
	w, h := b.FotoW, b.FotoH
	if w == 0 {
		w = defaultPhotoW
	}
	if h == 0 {
		h = defaultPhotoH
	}
	caption := ""
	if b.FotoCredito != "" {
		caption = fmt.Sprintf("<figcaption class='photo__cap'>%s</figcaption>", textutil.Attr(b.FotoCredito))
	}
	return "<section class='breed__photo' aria-labelledby='foto-title'>" +
		"<h2 id='foto-title' class='visually-hidden'>Foto da raça</h2>" +
		fmt.Sprintf("<img src='%s' alt='Foto ilustrativa de %s' loading='lazy' width='%d' height='%d' />",
			photoURL(base, b.Foto), textutil.Attr(b.Nome), w, h) +
		caption + "</section>"
}

// FormatMF renders a male/female measurement pair with its unit.
func FormatMF(male, female, unit string) string {
	if male == "" {
		male = placeholder
	}
	if female == "" {
		female = placeholder
	}
	return fmt.Sprintf("%s <span class='sex sex--m' aria-hidden='true'>♂</span> / %s "+
		"<span class='sex sex--f' aria-hidden='true'>♀</span> %s", male, female, unit)
}

// Ranked is a breed with its popularity value.
type Ranked struct {
	Breed breed.Breed
	Value int
}

// TopN returns the n most popular breeds for key ("br" or "global"), highest
// first. Ties keep the input order; breeds without a numeric value are
// skipped.
func TopN(breeds []breed.Breed, key string, n int) []Ranked {
	var usable []Ranked
	for _, b := range breeds {
		if v, ok := b.Popularity(key); ok {
			usable = append(usable, Ranked{Breed: b, Value: v})
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].Value > usable[j].Value
	})
	if len(usable) > n {
		usable = usable[:n]
	}
	return usable
}

// RenderRankItems renders ranking list items linking to the detail pages.
func RenderRankItems(base string, items []Ranked) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("<li class='rank'>"+
			"  <a href='%s/racas/%s.html'>%s</a>"+
			"  <span class='rank__value'>%d</span>"+
			"  <span class='rank__bar' aria-hidden='true' style='--v:%d'></span>"+
			"</li>", base, it.Breed.SlugOrDefault(), textutil.Attr(it.Breed.Nome), it.Value, it.Value))
	}
	return strings.Join(out, "\n")
}
