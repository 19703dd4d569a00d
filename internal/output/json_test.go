package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/racas/internal/types"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(false, true, "")
	f.SetOutput(&buf)

	require.NoError(t, f.Format(testSummary()))

	var report JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "racas", report.Header.Tool)
	assert.Equal(t, "2026-03-10T12:00:00Z", report.Header.Timestamp)
	assert.Equal(t, "tropical-urbano", report.Summary.Profile)
	assert.Equal(t, 2, report.Summary.TotalBreeds)
	assert.Equal(t, 3, report.Summary.TotalPages)
	assert.Equal(t, "42ms", report.Summary.Duration)
	require.Len(t, report.Breeds, 2)
	assert.Equal(t, "labrador-retriever", report.Breeds[0].Slug)
	assert.Equal(t, 4, report.Breeds[0].Atividade.Valor)
	assert.Equal(t, 2, report.Breeds[1].Pelagem.Valor)
	assert.Empty(t, report.Issues)

	facts, ok := report.Breeds[0].Atividade.Facts.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), facts["intensidade"])

	// HTML in score texts is not escaped
	assert.Contains(t, buf.String(), "<strong>nível físico alto</strong>")
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"header\""))
}

func TestJSONFormatter_Quiet(t *testing.T) {
	summary := testSummary()
	summary.Issues = []types.ValidationError{
		{File: "data/racas.json", Message: "bad", Severity: types.SeverityError, Path: "[0].nome"},
	}

	var buf bytes.Buffer
	f := NewJSONFormatter(true, false, "")
	f.SetOutput(&buf)
	require.NoError(t, f.Format(summary))

	var report JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Empty(t, report.Breeds)
	assert.Empty(t, report.Pages)
	assert.Equal(t, 2, report.Summary.TotalBreeds)
	assert.Equal(t, 1, report.Summary.TotalErrors)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "[0].nome", report.Issues[0].Path)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "compact output is a single line")
}

func TestJSONFormatter_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	var buf bytes.Buffer
	f := NewJSONFormatter(false, true, path)
	f.SetOutput(&buf)

	require.NoError(t, f.Format(testSummary()))
	assert.Zero(t, buf.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestJSONFormatter_OutputFileError(t *testing.T) {
	f := NewJSONFormatter(false, true, filepath.Join(t.TempDir(), "missing", "report.json"))
	err := f.Format(testSummary())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing to file")
}
