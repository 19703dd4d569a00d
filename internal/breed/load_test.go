package breed

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/racas/internal/schema"
)

func TestLoadBreeds(t *testing.T) {
	validator, err := schema.NewValidator()
	require.NoError(t, err)

	breeds, err := LoadBreeds(filepath.Join("testdata", "racas.json"), validator)
	require.NoError(t, err)
	require.Len(t, breeds, 3)

	lab := breeds[0]
	assert.Equal(t, "Labrador Retriever", lab.Nome)
	assert.Equal(t, "122", lab.FCICodigo.String())
	assert.Equal(t, "8", lab.Atributos.FCIGrupo.String())
	assert.Equal(t, "30", lab.Medidas.PesoKG["macho"].String())
	assert.Equal(t, "10–12", lab.LifeSpan())
	pop, ok := lab.Popularity("global")
	assert.True(t, ok)
	assert.Equal(t, 100, pop)

	pug := breeds[1]
	assert.Equal(t, "pug", pug.SlugOrDefault())
	assert.Equal(t, "9", pug.Atributos.FCIGrupo.String())
	assert.Nil(t, pug.Atributos.PelagemTipo)
	assert.Equal(t, "Companheiro compacto e brincalhão.", pug.Summary())
	_, ok = pug.Popularity("br")
	assert.False(t, ok)

	srd := Normalize(breeds[2].Atributos)
	assert.Equal(t, SizeMedio, srd.Porte)
}

func TestLoadBreedsSchemaViolations(t *testing.T) {
	validator, err := schema.NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name string
		file string
	}{
		{"missing name", "no_name.json"},
		{"wrong attribute types", "bad_attributes.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBreeds(filepath.Join("testdata", tt.file), validator)
			require.Error(t, err)

			var schemaErr *schema.Error
			require.True(t, errors.As(err, &schemaErr), "want *schema.Error, got %T", err)
			assert.NotEmpty(t, schemaErr.Issues)
		})
	}
}

func TestLoadBreedsWithoutValidator(t *testing.T) {
	breeds, err := LoadBreeds(filepath.Join("testdata", "no_name.json"), nil)
	require.NoError(t, err)
	require.Len(t, breeds, 1)
	assert.Equal(t, "sem-nome", breeds[0].SlugOrDefault())
}

func TestLoadBreedsMissingFile(t *testing.T) {
	_, err := LoadBreeds(filepath.Join("testdata", "nope.json"), nil)
	assert.Error(t, err)
}

func TestLoadAliases(t *testing.T) {
	aliases, err := LoadAliases(filepath.Join("testdata", "aliases_oficiais.json"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Labrador", "Lab"}, aliases.For("labrador-retriever"))
	assert.Equal(t, []string{"Carlino", "Mops"}, aliases.For("pug"))
	assert.Equal(t, []string{}, aliases.For("beagle"))
}

func TestLoadAliasesEmptyPath(t *testing.T) {
	aliases, err := LoadAliases("")
	require.NoError(t, err)
	assert.Empty(t, aliases)
	assert.Empty(t, aliases.For("pug"))
}
