package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
)

func sampleResult(t *testing.T) *models.ResultSet {
	t.Helper()
	rs := models.NewResultSet()
	require.NoError(t, rs.Add(&models.Table{
		Title:   "Tipo de cambio nominal",
		Sheet:   "Cuadros de resultados",
		Key:     "tipo_cambio",
		Rows:    1,
		Columns: []string{"periodo", "mediana"},
		Data:    []models.Row{{{Column: "periodo", Value: "2025-01-01"}, {Column: "mediana", Value: 1050.5}}},
	}))
	require.NoError(t, rs.Add(&models.Table{
		Title:   "Exportaciones",
		Sheet:   "Cuadros de resultados",
		Key:     "exportaciones",
		Rows:    1,
		Columns: []string{"ano", "mediana"},
		Data:    []models.Row{{{Column: "ano", Value: 2025.0}, {Column: "mediana", Value: nil}}},
	}))
	return rs
}

func TestTableFileName(t *testing.T) {
	assert.Equal(t, "rem_tipo_cambio.json", TableFileName("tipo_cambio"))
}

func TestToJSONCompact(t *testing.T) {
	data, err := ToJSON(sampleResult(t), false)
	require.NoError(t, err)

	assert.Equal(t,
		`{"tipo_cambio":{"titulo":"Tipo de cambio nominal","hoja":"Cuadros de resultados","clave":"tipo_cambio",`+
			`"filas":1,"columnas":["periodo","mediana"],"datos":[{"periodo":"2025-01-01","mediana":1050.5}]},`+
			`"exportaciones":{"titulo":"Exportaciones","hoja":"Cuadros de resultados","clave":"exportaciones",`+
			`"filas":1,"columnas":["ano","mediana"],"datos":[{"ano":2025,"mediana":null}]}}`,
		string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(sampleResult(t), true)
	require.NoError(t, err)

	assert.Contains(t, string(data), "{\n  \"tipo_cambio\": {\n    \"titulo\": \"Tipo de cambio nominal\",")
	assert.NotEqual(t, byte('\n'), data[len(data)-1])
	assert.True(t, json.Valid(data))
}

func TestWriteTables(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := WriteTables(sampleResult(t), dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "rem_tipo_cambio.json"),
		filepath.Join(dir, "rem_exportaciones.json"),
	}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)

	var table map[string]any
	require.NoError(t, json.Unmarshal(data, &table))
	assert.Equal(t, "exportaciones", table["clave"])
	assert.Equal(t, []any{"ano", "mediana"}, table["columnas"])
}

func TestWriteMaster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", MasterFileName)

	require.NoError(t, WriteMaster(sampleResult(t), path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var master map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &master))
	assert.Len(t, master, 2)
	assert.Equal(t, "Tipo de cambio nominal", master["tipo_cambio"]["titulo"])
}
