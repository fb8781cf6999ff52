// Package testkit generates fixture CSV files for tests and for seeding a
// demo data directory.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// SampleCSV is a small fixed dataset with one categorical, one numeric, one
// boolean, and one sparsely-missing column. Fixtures derive from it so tests
// can assert exact counts.
var SampleCSV = [][]string{
	{"product", "price", "in_stock", "notes"},
	{"widget", "9.99", "true", "promo"},
	{"widget", "12.50", "false", ""},
	{"gadget", "3.75", "true", "clearance"},
	{"doohickey", "120.00", "true", ""},
	{"widget", "9.99", "false", "promo"},
	{"gadget", "45.25", "true", ""},
}

// WriteSampleCSV writes the fixed sample dataset into dir under the given
// filename and returns its path.
func WriteSampleCSV(dir, filename string) (string, error) {
	return WriteCSV(dir, filename, SampleCSV)
}

// WriteCSV writes arbitrary rows as a CSV file under dir.
func WriteCSV(dir, filename string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create fixture directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create fixture file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write fixture rows: %w", err)
	}
	w.Flush()
	return path, w.Error()
}

// SeedDemoData writes a deterministic pseudo-random shopping dataset into
// dir so a fresh install has something to browse.
func SeedDemoData(dir string, rows int) (string, error) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"electronics", "grocery", "apparel", "toys", "garden"}
	regions := []string{"north", "south", "east", "west"}

	records := [][]string{{"order_id", "category", "region", "amount", "returned"}}
	for i := 0; i < rows; i++ {
		amount := 5 + rng.Float64()*195
		returned := "no"
		if rng.Float64() < 0.08 {
			returned = "yes"
		}
		records = append(records, []string{
			fmt.Sprintf("ORD-%05d", i+1),
			categories[rng.Intn(len(categories))],
			regions[rng.Intn(len(regions))],
			fmt.Sprintf("%.2f", amount),
			returned,
		})
	}
	return WriteCSV(dir, "demo_orders.csv", records)
}
