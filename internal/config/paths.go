package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the directories the pipeline reads and writes. Relative
// paths are anchored at the working directory, which is the project root in
// both development and deployment.
type Paths struct {
	RawDir    string
	OutputDir string
	LogsDir   string
}

// NewPaths resolves a PathsConfig into absolute directories.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	p := &Paths{}

	var err error
	if p.RawDir, err = resolve(cfg.RawDir); err != nil {
		return nil, fmt.Errorf("failed to resolve raw directory: %w", err)
	}
	if p.OutputDir, err = resolve(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if p.LogsDir, err = resolve(cfg.LogsDir); err != nil {
		return nil, fmt.Errorf("failed to resolve logs directory: %w", err)
	}

	return p, nil
}

func resolve(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Abs(dir)
}

// EnsureDirectories creates every directory the pipeline needs.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.RawDir, p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path for a log file under the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// GetOutputPath returns the path for a generated document under the output
// directory.
func (p *Paths) GetOutputPath(name string) string {
	return filepath.Join(p.OutputDir, name)
}
