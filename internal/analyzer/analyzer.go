// Package analyzer owns one loaded dataset and derives summaries and chart
// artifacts from it. An Analyzer is immutable after construction; every
// operation recomputes from the dataset, nothing is cached.
package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"datalens/adapters/tabular"
	"datalens/domain/chart"
	"datalens/domain/core"
	"datalens/domain/dataset"
	"datalens/internal/render"
)

// Defaults applied when a caller passes a non-positive parameter.
const (
	DefaultBarTopN  = 10
	DefaultPieTopN  = 5
	DefaultHistBins = 10
)

// Analyzer wraps exactly one Dataset plus a display name derived from the
// source file, used to namespace exported artifacts.
type Analyzer struct {
	ds        *dataset.Dataset
	name      string
	outputDir string
}

// New constructs an Analyzer over the file at sourcePath. The path must
// reference an existing file; this is checked before any parse attempt.
// Persisted charts are written under outputDir.
func New(sourcePath, outputDir string) (*Analyzer, error) {
	if _, err := os.Stat(sourcePath); os.IsNotExist(err) {
		return nil, core.NewSourceNotFoundError(sourcePath)
	}

	ds, err := tabular.NewReader(sourcePath).Read()
	if err != nil {
		return nil, err
	}

	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return &Analyzer{ds: ds, name: name, outputDir: outputDir}, nil
}

// DisplayName returns the source file's base name without extension.
func (a *Analyzer) DisplayName() string { return a.name }

// Dataset exposes the loaded dataset for table browsing by the shell.
func (a *Analyzer) Dataset() *dataset.Dataset { return a.ds }

// BarChart renders a horizontal bar chart of the topN most frequent values
// in column. If persist is set the PNG is also written to the output
// directory; the in-memory artifact is returned either way.
func (a *Analyzer) BarChart(column string, topN int, persist bool) (*chart.Artifact, error) {
	col, ok := a.ds.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	if topN <= 0 {
		topN = DefaultBarTopN
	}

	cats := topCategories(col, topN)
	title := fmt.Sprintf("Bar Chart of %s (Top %d)", column, topN)
	png, err := render.Bar(title, "Count", column, cats)
	if err != nil {
		return nil, err
	}
	return a.finish(chart.NewArtifact(a.name, column, chart.KindBar, png), persist)
}

// PieChart renders the topN most frequent values in column as pie slices.
// Slice percentages are computed over the topN subset's total.
func (a *Analyzer) PieChart(column string, topN int, persist bool) (*chart.Artifact, error) {
	col, ok := a.ds.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	if topN <= 0 {
		topN = DefaultPieTopN
	}

	cats := topCategories(col, topN)
	title := fmt.Sprintf("Pie Chart of %s (Top %d)", column, topN)
	png, err := render.Pie(title, cats)
	if err != nil {
		return nil, err
	}
	return a.finish(chart.NewArtifact(a.name, column, chart.KindPie, png), persist)
}

// Histogram renders a histogram of a numeric column with a density overlay.
// Column existence is checked before the kind check, so an unknown column
// reports ErrColumnNotFound even when it would also fail the numeric check.
func (a *Analyzer) Histogram(column string, bins int, persist bool) (*chart.Artifact, error) {
	col, ok := a.ds.Column(column)
	if !ok {
		return nil, core.NewColumnNotFoundError(column)
	}
	if col.Kind != dataset.KindNumeric {
		return nil, core.NewNotNumericError(column)
	}
	if bins <= 0 {
		bins = DefaultHistBins
	}

	title := fmt.Sprintf("Histogram of %s", column)
	png, err := render.Histogram(title, column, "Frequency", col.Floats(), bins)
	if err != nil {
		return nil, err
	}
	return a.finish(chart.NewArtifact(a.name, column, chart.KindHistogram, png), persist)
}

func (a *Analyzer) finish(art *chart.Artifact, persist bool) (*chart.Artifact, error) {
	if persist {
		path, err := art.Save(a.outputDir)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"path": path, "kind": art.Kind}).Info("chart saved")
	}
	return art, nil
}
