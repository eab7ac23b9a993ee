// Package models defines data structures for report block extraction.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// CellKind identifies the type of a raw cell value.
type CellKind int

const (
	// CellEmpty is an absent cell.
	CellEmpty CellKind = iota
	// CellString is a text cell.
	CellString
	// CellNumber is a numeric cell.
	CellNumber
	// CellDate is a numeric cell carrying a date number format.
	CellDate
)

// Cell is a single untyped raw value from a sheet grid.
type Cell struct {
	Kind CellKind
	// Str holds the text of a CellString.
	Str string
	// Num holds the value of a CellNumber.
	Num float64
	// Time holds the value of a CellDate.
	Time time.Time
}

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{Kind: CellString, Str: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: CellDate, Time: t} }

// IsEmpty reports whether the cell is absent. A NaN number counts as absent.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellNumber:
		return math.IsNaN(c.Num)
	}
	return false
}

// IsBlank reports whether the cell is absent or holds only whitespace.
func (c Cell) IsBlank() bool {
	if c.IsEmpty() {
		return true
	}
	return c.Kind == CellString && strings.TrimSpace(c.Str) == ""
}

// String renders the cell value as text. Integral numbers have no
// fractional part; dates at midnight render as YYYY-MM-DD.
func (c Cell) String() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellDate:
		if c.Time.Hour() == 0 && c.Time.Minute() == 0 && c.Time.Second() == 0 {
			return c.Time.Format(time.DateOnly)
		}
		return c.Time.Format(time.DateTime)
	}
	return ""
}
