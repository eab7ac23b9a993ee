package models

import "fmt"

// BlockDescriptor locates one titled table within a sheet.
// All indexes are 0-based sheet rows; DataEnd is exclusive.
type BlockDescriptor struct {
	// Title is the trimmed text of the title cell.
	Title string `json:"titulo"`
	// TitleRow is the row holding the title.
	TitleRow int `json:"fila_titulo"`
	// HeaderRow is the row holding the column names.
	HeaderRow int `json:"fila_header"`
	// DataStart is the first data row.
	DataStart int `json:"fila_inicio_datos"`
	// DataEnd is one past the last data row.
	DataEnd int `json:"fila_fin_datos"`
}

// Validate checks TitleRow < HeaderRow < DataStart <= DataEnd <= nrows.
func (b BlockDescriptor) Validate(nrows int) error {
	if b.TitleRow < 0 || b.TitleRow >= b.HeaderRow ||
		b.HeaderRow >= b.DataStart || b.DataStart > b.DataEnd || b.DataEnd > nrows {
		return fmt.Errorf("invalid block %q: title=%d header=%d data=[%d,%d) rows=%d",
			b.Title, b.TitleRow, b.HeaderRow, b.DataStart, b.DataEnd, nrows)
	}
	return nil
}

// NumDataRows returns the size of the data row range.
func (b BlockDescriptor) NumDataRows() int {
	return b.DataEnd - b.DataStart
}
