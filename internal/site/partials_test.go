package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings(t *testing.T) Settings {
	t.Helper()
	s, err := LoadSettings("")
	require.NoError(t, err)
	s.BaseURL = "https://caes.example/"
	s.Name = "Cães & Cia"
	return s
}

func TestRenderHeadBase(t *testing.T) {
	head := RenderHeadBase(testSettings(t))

	assert.True(t, strings.HasPrefix(head, `<meta charset="utf-8" />`))
	assert.Contains(t, head, `<meta name="robots" content="noindex, nofollow" />`)
	assert.Contains(t, head, `<meta name="theme-color" content="#127a72" />`)
	assert.Contains(t, head, `href="https://caes.example/styles/tokens.css"`)
	assert.Contains(t, head, `href="https://caes.example/assets/icons/sprite.svg"`)
	assert.True(t, strings.HasSuffix(head, "/>\n"))
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader(testSettings(t))

	assert.Contains(t, header, `<a href="https://caes.example/" class="logo" aria-label="Cães &amp; Cia — Página inicial">Cães &amp; Cia</a>`)
	assert.Contains(t, header, `<li><a class="nav__link" href="https://caes.example/racas/">Raças</a></li>`)
	assert.Contains(t, header, `href="https://caes.example/guia-responsavel/">Guia Responsável</a>`)
}

func TestRenderFooter(t *testing.T) {
	footer := RenderFooter(testSettings(t), 2026)

	assert.Contains(t, footer, `<a class="footer__link" href="https://caes.example/sitemap.html">Mapa do site</a>`)
	assert.Contains(t, footer, "&copy; 2026 Cães &amp; Cia — Conteúdo educativo.")
}

func TestWritePartials(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	p := RenderPartials(testSettings(t), 2026)

	written, err := WritePartials(dir, p)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	data, err := os.ReadFile(filepath.Join(dir, PartialFooter))
	require.NoError(t, err)
	assert.Equal(t, p.Footer, string(data))
}

func TestPartialsResolve(t *testing.T) {
	rendered := Partials{HeadBase: "head", Header: "header", Footer: "footer"}
	templates := map[string]*Template{
		PartialHeader: NewTemplate(PartialHeader, `<a href="$baseUrl/">logo</a>`),
	}

	got := rendered.Resolve(templates, "https://x.org")
	assert.Equal(t, "head", got.HeadBase)
	assert.Equal(t, `<a href="https://x.org/">logo</a>`, got.Header)
	assert.Equal(t, "footer", got.Footer)
}
