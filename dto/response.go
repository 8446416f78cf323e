package dto

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrDocumentRead  = errors.New("document is not a readable PDF")
	ErrMissingBills  = errors.New("both files are required: old_bill and new_bill")
	ErrSerialization = errors.New("failed to build spreadsheet")
)

// DocumentReadError reports which uploaded bill could not be read.
type DocumentReadError struct {
	Document string
	Err      error
}

func (e *DocumentReadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Document, ErrDocumentRead)
	}
	return fmt.Sprintf("%s: %v: %v", e.Document, ErrDocumentRead, e.Err)
}

func (e *DocumentReadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDocumentRead}
	}
	return []error{ErrDocumentRead, e.Err}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ComparisonRow is one line of the comparison table.
type ComparisonRow struct {
	Label  string
	Old    string
	New    string
	Change string
}

// Cells returns the row as the four display cells, in column order.
func (r ComparisonRow) Cells() []string {
	return []string{r.Label, r.Old, r.New, r.Change}
}

// MarshalJSON encodes the row as a four-element string array.
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Cells())
}

// ComparisonTable is the response of a preview request
type ComparisonTable struct {
	Header [4]string       `json:"header"`
	Rows   []ComparisonRow `json:"rows"`
}

// Grid returns the header followed by every row, as plain string cells.
func (t *ComparisonTable) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Header[:])
	for _, row := range t.Rows {
		grid = append(grid, row.Cells())
	}
	return grid
}
