package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/textutil"
)

const schemaContext = "https://schema.org"

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type breadcrumbList struct {
	Context string     `json:"@context"`
	Type    string     `json:"@type"`
	Items   []listItem `json:"itemListElement"`
}

type quantitativeValue struct {
	Type     string `json:"@type"`
	MinValue int    `json:"minValue"`
	MaxValue int    `json:"maxValue"`
	UnitCode string `json:"unitCode"`
}

type propertyValue struct {
	Type  string            `json:"@type"`
	Name  string            `json:"name"`
	Value quantitativeValue `json:"value"`
}

type breedThing struct {
	Context          string          `json:"@context"`
	Type             string          `json:"@type"`
	AdditionalType   string          `json:"additionalType"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Image            string          `json:"image"`
	MainEntityOfPage string          `json:"mainEntityOfPage"`
	Properties       []propertyValue `json:"additionalProperty"`
}

// encodeJSONLD marshals v without HTML escaping so accented names and the
// "<" of free text stay readable inside <script type="application/ld+json">.
func encodeJSONLD(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode JSON-LD: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func crumbs(base string, tail ...listItem) breadcrumbList {
	items := []listItem{{Type: "ListItem", Position: 1, Name: "Início", Item: base + "/"}}
	for i, it := range tail {
		it.Type = "ListItem"
		it.Position = i + 2
		items = append(items, it)
	}
	return breadcrumbList{Context: schemaContext, Type: "BreadcrumbList", Items: items}
}

// BreadcrumbDetail is the Início > Raças > breed trail of a detail page.
func BreadcrumbDetail(base, name, url string) (string, error) {
	return encodeJSONLD(crumbs(base,
		listItem{Name: "Raças", Item: base + "/racas/"},
		listItem{Name: name, Item: url},
	))
}

// BreadcrumbList is the Início > Raças trail of the list page.
func BreadcrumbList(base string) (string, error) {
	return encodeJSONLD(crumbs(base, listItem{Name: "Raças", Item: base + "/racas/"}))
}

// BreadcrumbCompare is the Início > Comparar trail of the compare page.
func BreadcrumbCompare(base string) (string, error) {
	return encodeJSONLD(crumbs(base, listItem{Name: "Comparar", Item: base + "/comparar/"}))
}

// quantity parses the first usable text into a min/max value.
func quantity(unit string, texts ...string) (quantitativeValue, bool) {
	for _, txt := range texts {
		if lo, hi, ok := textutil.ParseMinMax(txt); ok {
			return quantitativeValue{Type: "QuantitativeValue", MinValue: lo, MaxValue: hi, UnitCode: unit}, true
		}
	}
	return quantitativeValue{}, false
}

// BreedJSONLD describes a breed as a schema.org Thing with height, weight and
// life span properties when their text parses as a range. Height and weight
// use the male value, falling back to the female one.
func BreedJSONLD(b breed.Breed, url string) (string, error) {
	m := b.Medidas
	props := []propertyValue{}
	if q, ok := quantity("CMT", m.AlturaCM["macho"].String(), m.AlturaCM["femea"].String()); ok {
		props = append(props, propertyValue{Type: "PropertyValue", Name: "Altura", Value: q})
	}
	if q, ok := quantity("KGM", m.PesoKG["macho"].String(), m.PesoKG["femea"].String()); ok {
		props = append(props, propertyValue{Type: "PropertyValue", Name: "Peso", Value: q})
	}
	if q, ok := quantity("ANN", m.ExpectativaAnos.String()); ok {
		props = append(props, propertyValue{Type: "PropertyValue", Name: "Expectativa de vida", Value: q})
	}

	return encodeJSONLD(breedThing{
		Context:          schemaContext,
		Type:             "Thing",
		AdditionalType:   "http://www.productontology.org/id/Dog_breed",
		Name:             b.Nome,
		Description:      b.Summary(),
		Image:            b.Foto,
		MainEntityOfPage: url,
		Properties:       props,
	})
}
