package remblocks

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates none of the requested sheets exists in the workbook.
var ErrNoSheets = errors.New("no input sheet available")

// Extraction components reported by ExtractionError.
const (
	ComponentLoad      = "load"
	ComponentNormalize = "normalize"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string
	// Block is the title of the failing block, empty for sheet-level errors.
	Block string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("extraction error in sheet %q block %q (%s): %v", e.SheetName, e.Block, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
