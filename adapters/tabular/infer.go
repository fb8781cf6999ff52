package tabular

import (
	"math"
	"strconv"
	"strings"
	"time"

	"datalens/domain/dataset"
)

// Inference thresholds: the share of non-empty sampled cells that must parse
// as a kind before the column is declared that kind. Numeric wins ties since
// it is checked first.
const (
	numericThreshold   = 0.8
	booleanThreshold   = 0.9
	timestampThreshold = 0.8
	maxSampleSize      = 500
)

var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// inferKind samples a column's cells and declares its kind from parse ratios.
// Everything that is not clearly numeric, boolean, or timestamp is text.
func inferKind(cells []string) dataset.Kind {
	sample := sampleCells(cells, maxSampleSize)

	valid, numeric, boolean, timestamp := 0, 0, 0, 0
	for _, cell := range sample {
		if cell == "" {
			continue
		}
		valid++
		if _, ok := parseNumeric(cell); ok {
			numeric++
		}
		if _, ok := parseBoolean(cell); ok {
			boolean++
		}
		if parsesTimestamp(cell) {
			timestamp++
		}
	}
	if valid == 0 {
		return dataset.KindText
	}

	n := float64(valid)
	switch {
	case float64(numeric)/n >= numericThreshold:
		return dataset.KindNumeric
	case float64(boolean)/n >= booleanThreshold:
		return dataset.KindBoolean
	case float64(timestamp)/n >= timestampThreshold:
		return dataset.KindTimestamp
	default:
		return dataset.KindText
	}
}

// sampleCells takes up to size cells evenly distributed across the column.
func sampleCells(cells []string, size int) []string {
	if len(cells) <= size {
		return cells
	}
	step := float64(len(cells)) / float64(size)
	sample := make([]string, 0, size)
	for i := 0; i < size; i++ {
		idx := int(math.Round(float64(i) * step))
		if idx >= len(cells) {
			idx = len(cells) - 1
		}
		sample = append(sample, cells[idx])
	}
	return sample
}

// parseNumeric parses a cell as a float, tolerating surrounding whitespace
// and thousands separators. Infinities and NaN are rejected.
func parseNumeric(cell string) (float64, bool) {
	clean := strings.TrimSpace(cell)
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

func parseBoolean(cell string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "yes", "y", "on":
		return true, true
	case "false", "no", "n", "off":
		return false, true
	}
	return false, false
}

func parsesTimestamp(cell string) bool {
	for _, format := range timestampFormats {
		if _, err := time.Parse(format, cell); err == nil {
			return true
		}
	}
	return false
}
