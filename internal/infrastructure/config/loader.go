package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads UI configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadUI loads ui.json
func (l *Loader) LoadUI() (*UIConfig, error) {
	data, err := fs.ReadFile(l.fsys, "ui.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read ui.json: %w", err)
	}

	var cfg UIConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui.json: %w", err)
	}

	return &cfg, nil
}
