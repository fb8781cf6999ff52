package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datalens/domain/core"
)

// Kind identifies a chart type. The value doubles as the filename suffix.
type Kind string

const (
	KindBar       Kind = "bar_chart"
	KindPie       Kind = "pie_chart"
	KindHistogram Kind = "histogram"
)

// CategoryCount is one ranked (label, count) pair for categorical charts.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Artifact is an in-memory rendered figure. It lives for one request and is
// discarded unless the caller saves it.
type Artifact struct {
	ID        core.ID   `json:"id"`
	Dataset   string    `json:"dataset"`
	Column    string    `json:"column"`
	Kind      Kind      `json:"kind"`
	PNG       []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewArtifact wraps rendered PNG bytes in an artifact.
func NewArtifact(dataset, column string, kind Kind, png []byte) *Artifact {
	return &Artifact{
		ID:        core.NewID(),
		Dataset:   dataset,
		Column:    column,
		Kind:      kind,
		PNG:       png,
		CreatedAt: time.Now(),
	}
}

// Filename returns the canonical artifact filename:
// <dataset>_<column>_<kind>.png
func (a *Artifact) Filename() string {
	return fmt.Sprintf("%s_%s_%s.png", a.Dataset, a.Column, a.Kind)
}

// Save writes the PNG under dir, creating the directory if absent.
// A prior file of the same name is overwritten.
func (a *Artifact) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, a.Filename())
	if err := os.WriteFile(path, a.PNG, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chart file: %w", err)
	}
	return path, nil
}
