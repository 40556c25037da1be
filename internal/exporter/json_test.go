package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_WriteDocument(t *testing.T) {
	dir := t.TempDir()
	writer := NewJSONWriter(filepath.Join(dir, "nested", "out"))

	view := map[string]any{
		"SRA100": map[string]any{"code": "SRA100", "measurement_count": 2},
	}
	require.NoError(t, writer.WriteDocument(StationsFile, view))

	data, err := os.ReadFile(filepath.Join(dir, "nested", "out", StationsFile))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "SRA100")

	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  ", "document is pretty-printed for diffing")
	assert.Equal(t, byte('\n'), data[len(data)-1], "document ends with a newline")
}

func TestJSONWriter_RerunReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	writer := NewJSONWriter(dir)

	require.NoError(t, writer.WriteDocument(LatestValuesFile, map[string]string{"a": "first"}))
	require.NoError(t, writer.WriteDocument(LatestValuesFile, map[string]string{"a": "second"}))

	data, err := os.ReadFile(filepath.Join(dir, LatestValuesFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "second")
	assert.NotContains(t, string(data), "first")
}

func TestJSONWriter_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writer := NewJSONWriter(dir)

	view := map[string]any{"SRA120": []string{"pH", "Turbidity"}}

	require.NoError(t, writer.WriteDocument(MeasurementsFile, view))
	first, err := os.ReadFile(filepath.Join(dir, MeasurementsFile))
	require.NoError(t, err)

	require.NoError(t, writer.WriteDocument(MeasurementsFile, view))
	second, err := os.ReadFile(filepath.Join(dir, MeasurementsFile))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
