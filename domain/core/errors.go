package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrSourceNotFound is returned when the requested source file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrColumnNotFound is returned when a requested column is absent from the dataset.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotNumeric is returned when a numeric-only operation is requested on a
	// column whose declared kind is not numeric.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrEmptyDataset is returned when a file has no data rows to analyze.
	ErrEmptyDataset = errors.New("dataset has no data rows")

	// ErrDuplicateColumn is returned when a header names the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrUnsupportedFormat is returned for file extensions the reader cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Error constructors with context

func NewSourceNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
}

func NewNotNumericError(column string) error {
	return fmt.Errorf("%w: %s", ErrNotNumeric, column)
}

func NewDuplicateColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrDuplicateColumn, column)
}

func NewUnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers

// IsNotFound reports whether err is a missing-source or missing-column condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSourceNotFound) || errors.Is(err, ErrColumnNotFound)
}

func IsNotNumeric(err error) bool {
	return errors.Is(err, ErrNotNumeric)
}
