package sidecar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "table_name": "sample_data",
  "table_description": "Sample data for testing VAE model",
  "column_types": {
    "age": "numerical",
    "income": "numerical",
    "education": "categorical",
    "employed": "categorical",
    "join_date": "datetime"
  },
  "base_name": "test_sample",
  "table_metadata": "This is a sample dataset for regression testing"
}
`

func TestWrite_SampleContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, Write(path, domain.SampleTableConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(data))
}

func TestWrite_KeyOrder(t *testing.T) {
	data, err := Encode(domain.SampleTableConfig(), FormatJSON)
	require.NoError(t, err)

	keys := []string{`"table_name"`, `"table_description"`, `"column_types"`, `"base_name"`, `"table_metadata"`}
	last := -1
	for _, k := range keys {
		idx := strings.Index(string(data), k)
		require.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestWrite_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))
	require.NoError(t, Write(path, domain.SampleTableConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(data))
}

func TestReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := domain.SampleTableConfig()

	jsonPath := filepath.Join(dir, "sample.json")
	require.NoError(t, Write(jsonPath, cfg))
	got, err := Read(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	yamlData, err := Encode(cfg, FormatYAML)
	require.NoError(t, err)
	yamlPath := filepath.Join(dir, "sample.yaml")
	require.NoError(t, os.WriteFile(yamlPath, yamlData, 0o644))
	got, err = Read(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	_, err := Encode(domain.SampleTableConfig(), "toml")
	require.Error(t, err)
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Read(bad)
	require.Error(t, err)
}
