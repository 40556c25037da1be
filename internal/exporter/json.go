package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Output document names, fixed relative to the output directory.
const (
	StationsFile     = "stations.json"
	MeasurementsFile = "measurements.json"
	LatestValuesFile = "latest_values.json"
)

// JSONWriter persists derived views as standalone pretty-printed JSON
// documents. Pretty printing keeps the artifacts human-diffable; writes are
// whole-document replacements, so a rerun fully supersedes the previous run.
type JSONWriter struct {
	outDir string
}

// NewJSONWriter creates a writer rooted at the given output directory.
func NewJSONWriter(outDir string) *JSONWriter {
	return &JSONWriter{outDir: outDir}
}

// WriteDocument marshals v with two-space indentation and writes it to name
// under the output directory.
func (w *JSONWriter) WriteDocument(name string, v any) error {
	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	slog.Info("Wrote JSON document",
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return nil
}
