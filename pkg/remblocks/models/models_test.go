package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Cell{}, ""},
		{StringCell("abc"), "abc"},
		{NumberCell(2025), "2025"},
		{NumberCell(3.25), "3.25"},
		{DateCell(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)), "2025-01-02"},
		{DateCell(time.Date(2025, 1, 2, 13, 4, 5, 0, time.UTC)), "2025-01-02 13:04:05"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.cell.String())
	}
}

func TestCellEmptiness(t *testing.T) {
	assert.True(t, Cell{}.IsEmpty())
	assert.True(t, NumberCell(math.NaN()).IsEmpty())
	assert.False(t, StringCell(" ").IsEmpty())
	assert.True(t, StringCell(" ").IsBlank())
	assert.False(t, NumberCell(0).IsBlank())
}

func TestBlockDescriptorValidate(t *testing.T) {
	ok := BlockDescriptor{Title: "t", TitleRow: 0, HeaderRow: 1, DataStart: 2, DataEnd: 5}
	assert.NoError(t, ok.Validate(5))
	assert.Equal(t, 3, ok.NumDataRows())

	assert.Error(t, ok.Validate(4))
	assert.Error(t, BlockDescriptor{TitleRow: 1, HeaderRow: 1, DataStart: 2, DataEnd: 3}.Validate(5))
	assert.Error(t, BlockDescriptor{TitleRow: 0, HeaderRow: 1, DataStart: 3, DataEnd: 2}.Validate(5))
}

func TestRowMarshalKeepsColumnOrder(t *testing.T) {
	row := Row{
		{Column: "periodo", Value: "2025-01-01"},
		{Column: "mediana", Value: 3.5},
		{Column: "notas", Value: nil},
		{Column: "ano", Value: "T1 & T2"},
	}

	data, err := row.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"periodo":"2025-01-01","mediana":3.5,"notas":null,"ano":"T1 & T2"}`, string(data))
}

func TestResultSet(t *testing.T) {
	rs := NewResultSet()
	require.NoError(t, rs.Add(&Table{Key: "tipo_cambio", Title: "Tipo de cambio nominal"}))
	require.NoError(t, rs.Add(&Table{Key: "exportaciones", Title: "Exportaciones"}))
	assert.Error(t, rs.Add(&Table{Key: "tipo_cambio"}))

	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, []string{"tipo_cambio", "exportaciones"}, rs.Keys())

	got, ok := rs.Get("exportaciones")
	require.True(t, ok)
	assert.Equal(t, "Exportaciones", got.Title)
	_, ok = rs.Get("missing")
	assert.False(t, ok)

	tables := rs.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "tipo_cambio", tables[0].Key)
}

func TestResultSetMarshal(t *testing.T) {
	rs := NewResultSet()
	require.NoError(t, rs.Add(&Table{
		Title:   "Tipo de cambio nominal",
		Sheet:   "Cuadros de resultados",
		Key:     "tipo_cambio",
		Rows:    1,
		Columns: []string{"periodo", "mediana"},
		Data:    []Row{{{Column: "periodo", Value: "2025-01-01"}, {Column: "mediana", Value: 1050.0}}},
	}))
	require.NoError(t, rs.Add(&Table{Key: "b", Columns: []string{}, Data: []Row{}}))

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Equal(t,
		`{"tipo_cambio":{"titulo":"Tipo de cambio nominal","hoja":"Cuadros de resultados","clave":"tipo_cambio",`+
			`"filas":1,"columnas":["periodo","mediana"],"datos":[{"periodo":"2025-01-01","mediana":1050}]},`+
			`"b":{"titulo":"","hoja":"","clave":"b","filas":0,"columnas":[],"datos":[]}}`,
		string(data))
}
