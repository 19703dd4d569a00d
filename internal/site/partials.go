package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/racas/internal/textutil"
)

// Partial template names.
const (
	PartialHeadBase = "head-base.html"
	PartialHeader   = "header.html"
	PartialFooter   = "footer.html"
)

// Partials holds the rendered shared fragments embedded in every page.
type Partials struct {
	HeadBase string
	Header   string
	Footer   string
}

// RenderPartials renders the three partials from the site settings. year is
// the copyright year printed in the footer.
func RenderPartials(s Settings, year int) Partials {
	return Partials{
		HeadBase: RenderHeadBase(s),
		Header:   RenderHeader(s),
		Footer:   RenderFooter(s, year),
	}
}

// RenderHeadBase renders the shared <head> content.
func RenderHeadBase(s Settings) string {
	base := s.Base()
	var b strings.Builder
	b.WriteString("<meta charset=\"utf-8\" />\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	fmt.Fprintf(&b, "<meta name=\"theme-color\" content=\"%s\" />\n", themeColor)
	fmt.Fprintf(&b, "<meta name=\"robots\" content=\"%s\" />\n\n", s.Robots())
	b.WriteString("<script>document.documentElement.classList.add(\"js\");</script>\n\n")
	fmt.Fprintf(&b, "<link rel=\"icon\" href=\"%s\" />\n", Absolutize(base, "/public/favicon.svg"))
	fmt.Fprintf(&b, "<link rel=\"apple-touch-icon\" href=\"%s\" />\n\n", Absolutize(base, "/public/apple-touch-180.png"))
	for _, css := range []string{"tokens", "base", "ui"} {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\" />\n", Absolutize(base, "/styles/"+css+".css"))
	}
	fmt.Fprintf(&b, "\n<link rel=\"preload\" as=\"image\" href=\"%s\" />\n", Absolutize(base, "/assets/icons/sprite.svg"))
	return b.String()
}

// RenderHeader renders the skip link, logo and main navigation.
func RenderHeader(s Settings) string {
	base := s.Base()
	name := textutil.Attr(s.Name)

	items := make([]string, 0, len(s.Nav))
	for _, it := range s.Nav {
		items = append(items, fmt.Sprintf(`<li><a class="nav__link" href="%s">%s</a></li>`,
			Absolutize(base, it.Href), textutil.Attr(it.Label)))
	}

	return `<a class="visually-hidden" href="#conteudo">Pular para o conteúdo</a>
<header class="header" role="banner">
  <div class="header__inner container">
    <a href="` + Absolutize(base, "/") + `" class="logo" aria-label="` + name + ` — Página inicial">` + name + `</a>
    <nav class="nav" aria-label="Principal">
      <ul class="nav__list">
        ` + strings.Join(items, " ") + `
      </ul>
    </nav>
  </div>
</header>
`
}

// RenderFooter renders the institutional links and the copyright line.
func RenderFooter(s Settings, year int) string {
	base := s.Base()
	links := make([]string, 0, len(s.FooterLinks))
	for _, it := range s.FooterLinks {
		links = append(links, fmt.Sprintf(`<a class="footer__link" href="%s">%s</a>`,
			Absolutize(base, it.Href), textutil.Attr(it.Label)))
	}

	return `<footer class="footer site-footer" role="contentinfo">
  <nav class="footer__nav" aria-label="Links institucionais">
    ` + strings.Join(links, " ") + `
  </nav>
  <p>&copy; ` + fmt.Sprint(year) + ` ` + textutil.Attr(s.Name) + ` — Conteúdo educativo. Consulte um veterinário para decisões de saúde.</p>
</footer>
`
}

// WritePartials writes the rendered partials into dir and returns the paths
// written.
func WritePartials(dir string, p Partials) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}
	files := []struct {
		name    string
		content string
	}{
		{PartialHeadBase, p.HeadBase},
		{PartialHeader, p.Header},
		{PartialFooter, p.Footer},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return written, fmt.Errorf("error writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Resolve substitutes $baseUrl into partial templates found on disk. A
// partial missing from templates falls back to the rendered default.
func (p Partials) Resolve(templates map[string]*Template, base string) Partials {
	vars := map[string]string{"baseUrl": base}
	pick := func(name, fallback string) string {
		if t, ok := templates[name]; ok {
			return t.SafeSubstitute(vars)
		}
		return fallback
	}
	return Partials{
		HeadBase: pick(PartialHeadBase, p.HeadBase),
		Header:   pick(PartialHeader, p.Header),
		Footer:   pick(PartialFooter, p.Footer),
	}
}
