package remblocks

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFilePattern matches the workbooks published for each survey.
const DefaultFilePattern = "tablas-relevamiento-expectativas-mercado-*.xlsx"

// LatestWorkbook returns the most recently modified file in dir matching
// pattern.
func LatestWorkbook(dir, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultFilePattern
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}

	var latest string
	var latestMod int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest, latestMod = m, mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: no %s in %s", ErrFileNotFound, pattern, dir)
	}
	return latest, nil
}
