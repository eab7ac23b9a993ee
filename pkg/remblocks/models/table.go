package models

import (
	"bytes"
	"encoding/json"
)

// Field is one column value within a Row.
type Field struct {
	Column string
	// Value is a string, a float64 or nil.
	Value any
}

// Row is an ordered mapping from column name to normalized value.
type Row []Field

// Get returns the value stored under column.
func (r Row) Get(column string) (any, bool) {
	for _, f := range r {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// Columns returns the column names of the row in order.
func (r Row) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// MarshalJSON encodes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, f.Column); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is a normalized block ready for serialization.
type Table struct {
	// Title is the block title as found in the sheet.
	Title string `json:"titulo"`
	// Sheet is the name of the originating sheet.
	Sheet string `json:"hoja"`
	// Key is the unique block identifier within a run.
	Key string `json:"clave"`
	// Rows is the number of data rows.
	Rows int `json:"filas"`
	// Columns lists the unique column names in output order.
	Columns []string `json:"columnas"`
	// Data holds one Row per data row.
	Data []Row `json:"datos"`
}

// writeJSON appends v to buf without HTML escaping and without the trailing
// newline that json.Encoder emits.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
