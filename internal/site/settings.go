// Package site renders the static pages of the breed guide: the shared
// partials, per-breed detail pages, the list, compare and home pages, the
// static institutional pages and their JSON-LD blocks.
package site

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dotcommander/racas/internal/discovery"
)

// Link is a navigation entry.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Settings is the content of site.json.
type Settings struct {
	Name        string `json:"name"`
	BaseURL     string `json:"base_url"`
	Noindex     *bool  `json:"noindex"`
	Nav         []Link `json:"nav"`
	FooterLinks []Link `json:"footer_links"`
}

// Default site settings.
const (
	DefaultName  = "Guia Raças"
	placeholder  = "—"
	themeColor   = "#127a72"
	defaultPhoto = "/assets/breeds/_placeholder.jpg"
)

// DefaultNav is used when site.json has no nav entry.
var DefaultNav = []Link{
	{Label: "Raças", Href: "/racas/"},
	{Label: "Comparar", Href: "/comparar/"},
	{Label: "Sobre", Href: "/sobre/"},
	{Label: "Guia Responsável", Href: "/guia-responsavel/"},
}

// DefaultFooterLinks is used when site.json has no footer_links entry.
var DefaultFooterLinks = []Link{
	{Label: "Mapa do site", Href: "/sitemap.html"},
	{Label: "Acessibilidade", Href: "/acessibilidade/"},
	{Label: "Privacidade", Href: "/privacidade/"},
}

// LoadSettings reads site.json (or .yaml) and applies defaults. An empty path
// yields the defaults alone.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	if path != "" {
		data, err := discovery.ReadDataFile(path)
		if err != nil {
			return Settings{}, err
		}
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse site settings %s: %w", path, err)
		}
	}
	s.applyDefaults()
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Noindex == nil {
		yes := true
		s.Noindex = &yes
	}
	if s.Nav == nil {
		s.Nav = append([]Link(nil), DefaultNav...)
	}
	if s.FooterLinks == nil {
		s.FooterLinks = append([]Link(nil), DefaultFooterLinks...)
	}
}

// Base returns the base URL without a trailing slash.
func (s Settings) Base() string {
	return strings.TrimRight(s.BaseURL, "/")
}

// Robots returns the robots meta content.
func (s Settings) Robots() string {
	if s.Noindex == nil || *s.Noindex {
		return "noindex, nofollow"
	}
	return "index, follow"
}

// Absolutize resolves href against base. Absolute http(s) links are kept,
// an empty href becomes "#".
func Absolutize(base, href string) string {
	if href == "" {
		href = "#"
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	base = strings.TrimRight(base, "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return strings.ReplaceAll(base+"/"+href, "//", "/")
}
