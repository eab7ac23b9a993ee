package models

// Sheet is a rectangular grid of raw cells loaded without header inference.
// Row 0 is the first sheet row.
type Sheet struct {
	// Name is the sheet name within the workbook.
	Name string
	// Rows holds the grid; every row has Width() cells.
	Rows [][]Cell
}

// NumRows returns the number of rows in the grid.
func (s *Sheet) NumRows() int {
	return len(s.Rows)
}

// Width returns the number of columns in the grid.
func (s *Sheet) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Row returns row i, or nil when i is out of range.
func (s *Sheet) Row(i int) []Cell {
	if i < 0 || i >= len(s.Rows) {
		return nil
	}
	return s.Rows[i]
}
