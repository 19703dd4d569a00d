// Package client builds breeds-client.json, the per-breed score and facts
// payload consumed by the browser-side filters and compare page.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotcommander/racas/internal/breed"
	"github.com/dotcommander/racas/internal/rules"
	"github.com/dotcommander/racas/internal/scoring"
	"github.com/dotcommander/racas/internal/types"
)

// FileName is the client payload file name inside the data directory.
const FileName = "breeds-client.json"

// FCI is the group identifier with its display name.
type FCI struct {
	Grupo     *string `json:"grupo"`
	Descricao string  `json:"descricao"`
}

// Size is the size slug with its display label.
type Size struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// Measures mirrors the breed measurements.
type Measures struct {
	AlturaCM        map[string]types.FlexString `json:"altura_cm"`
	PesoKG          map[string]types.FlexString `json:"peso_kg"`
	ExpectativaAnos string                      `json:"expectativa_anos"`
}

// Energy is the activity score flattened with its facts.
type Energy struct {
	Valor int `json:"valor"`
	scoring.ActivityFacts
}

// Coat is the grooming score flattened with its facts.
type Coat struct {
	Valor int `json:"valor"`
	scoring.GroomingFacts
}

// Climate is the climate score flattened with its facts.
type Climate struct {
	Valor int `json:"valor"`
	scoring.ClimateFacts
}

// Record is one breed entry of the client payload.
type Record struct {
	Slug    string   `json:"slug"`
	Nome    string   `json:"nome"`
	Foto    string   `json:"foto"`
	Origem  string   `json:"origem"`
	FCI     FCI      `json:"fci"`
	Porte   Size     `json:"porte"`
	Medidas Measures `json:"medidas"`
	Energia Energy   `json:"energia"`
	Pelagem Coat     `json:"pelagem"`
	Clima   Climate  `json:"clima"`
	Aliases []string `json:"aliases"`
}

// Build assembles the client record of a scored breed.
func Build(b breed.Breed, s scoring.BreedScores, t *rules.RuleTable, aliases breed.Aliases) Record {
	group := b.Atributos.FCIGrupo.String()
	var grupo *string
	if group != "" {
		grupo = &group
	}
	origem := b.Origem
	if origem == "" {
		origem = "—"
	}
	size := b.Atributos.SizeSlug()
	slug := b.SlugOrDefault()

	return Record{
		Slug:   slug,
		Nome:   b.Nome,
		Foto:   b.Foto,
		Origem: origem,
		FCI:    FCI{Grupo: grupo, Descricao: t.GroupName(group)},
		Porte:  Size{Slug: size, Label: breed.SizeLabel(size)},
		Medidas: Measures{
			AlturaCM:        nonNil(b.Medidas.AlturaCM),
			PesoKG:          nonNil(b.Medidas.PesoKG),
			ExpectativaAnos: b.LifeSpan(),
		},
		Energia: Energy{Valor: s.Activity.Value, ActivityFacts: s.Activity.Facts},
		Pelagem: Coat{Valor: s.Grooming.Value, GroomingFacts: s.Grooming.Facts},
		Clima:   Climate{Valor: s.Climate.Value, ClimateFacts: s.Climate.Facts},
		Aliases: aliases.For(slug),
	}
}

func nonNil(m map[string]types.FlexString) map[string]types.FlexString {
	if m == nil {
		return map[string]types.FlexString{}
	}
	return m
}

// Encode renders records as indented JSON without escaping non-ASCII text.
func Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode client payload: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes records into dir/breeds-client.json and returns the path.
func Write(dir string, records []Record) (string, error) {
	data, err := Encode(records)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating directory: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}
