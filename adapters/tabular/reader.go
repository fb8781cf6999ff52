package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datalens/domain/core"
	"datalens/domain/dataset"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Reader loads delimited tabular files (.csv or .xlsx) into a Dataset.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for the given path; the format is chosen by
// file extension.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := strings.TrimPrefix(ext, ".")
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read parses the full file into a Dataset. The first row is the header;
// cells are trimmed, short rows are padded with missing cells so every
// column keeps a uniform row count.
func (r *Reader) Read() (*dataset.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, core.NewSourceNotFoundError(r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, core.NewUnsupportedFormatError(r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s", core.ErrEmptyDataset, r.filePath)
	}
	return r.buildDataset(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, padded later
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	logrus.WithFields(logrus.Fields{"file": r.filePath, "rows": len(rows)}).
		Debug("CSV file read")
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use the first sheet.
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	logrus.WithFields(logrus.Fields{"file": r.filePath, "sheet": sheet, "rows": len(rows)}).
		Debug("Excel sheet read")
	return rows, nil
}

// buildDataset converts raw string rows into typed columns.
func (r *Reader) buildDataset(rows [][]string) (*dataset.Dataset, error) {
	headers := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(headers))
	for i, h := range rows[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			return nil, core.NewDuplicateColumnError(name)
		}
		seen[name] = true
		headers[i] = name
	}

	dataRows := rows[1:]
	cells := make([][]string, len(headers))
	for j := range headers {
		col := make([]string, len(dataRows))
		for i, row := range dataRows {
			if j < len(row) {
				col[i] = strings.TrimSpace(row[j])
			}
		}
		cells[j] = col
	}

	columns := make([]dataset.Column, len(headers))
	for j, name := range headers {
		columns[j] = buildColumn(name, cells[j])
	}

	ds, err := dataset.New(columns)
	if err != nil {
		return nil, err
	}
	rowCount, colCount := ds.Shape()
	logrus.WithFields(logrus.Fields{
		"file":    r.filePath,
		"columns": colCount,
		"rows":    rowCount,
	}).Info("file processed")
	return ds, nil
}

// buildColumn infers the column kind from its cells and materializes values.
func buildColumn(name string, cells []string) dataset.Column {
	kind := inferKind(cells)
	values := make([]dataset.Value, len(cells))
	for i, cell := range cells {
		v := dataset.Value{Raw: cell, Missing: cell == ""}
		if kind == dataset.KindNumeric && !v.Missing {
			num, ok := parseNumeric(cell)
			if ok {
				v.Num = num
			} else {
				// Cell did not parse under a numeric majority; treat as missing
				// for statistics while keeping the raw text for display.
				v.Missing = true
			}
		}
		values[i] = v
	}
	return dataset.Column{Name: name, Kind: kind, Values: values}
}
