// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"golang.org/x/sync/errgroup"
)

// MasterFileName is the default name of the file holding every table.
const MasterFileName = "rem_bloques.json"

// maxParallelWrites bounds concurrent per-table file writes.
const maxParallelWrites = 4

// TableFileName returns the per-table file name for key.
func TableFileName(key string) string {
	return "rem_" + key + ".json"
}

// ToJSON serializes the whole result set keyed by block key.
func ToJSON(rs *models.ResultSet, pretty bool) ([]byte, error) {
	return marshal(rs, pretty)
}

// TableToJSON serializes a single table.
func TableToJSON(t *models.Table, pretty bool) ([]byte, error) {
	return marshal(t, pretty)
}

// WriteTables writes one file per table into dir and returns the paths in
// result order.
func WriteTables(rs *models.ResultSet, dir string, pretty bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tables := rs.Tables()
	paths := make([]string, len(tables))
	var g errgroup.Group
	g.SetLimit(maxParallelWrites)
	for i, t := range tables {
		paths[i] = filepath.Join(dir, TableFileName(t.Key))
		g.Go(func() error {
			data, err := TableToJSON(t, pretty)
			if err != nil {
				return err
			}
			return os.WriteFile(paths[i], data, 0644)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteMaster writes the whole result set to path.
func WriteMaster(rs *models.ResultSet, path string, pretty bool) error {
	data, err := ToJSON(rs, pretty)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
