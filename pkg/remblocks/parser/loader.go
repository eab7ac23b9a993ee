package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a sheet as a raw grid without header inference.
// String cells stay text, numeric cells become numbers, and numeric cells
// with a date number format become dates. The grid is padded to a rectangle
// and trailing empty rows and columns are dropped.
func LoadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	styles := newDateStyles(f)

	nrows, ncols := findDataBounds(rows)
	grid := make([][]models.Cell, nrows)
	for r := 0; r < nrows; r++ {
		grid[r] = make([]models.Cell, ncols)
		for c := 0; c < len(rows[r]) && c < ncols; c++ {
			raw := rows[r][c]
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			grid[r][c] = readCell(f, sheetName, cellName, raw, styles, date1904)
		}
	}

	return &models.Sheet{Name: sheetName, Rows: grid}, nil
}

func readCell(f *excelize.File, sheetName, cellName, raw string, styles *dateStyles, date1904 bool) models.Cell {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return parseValue(raw)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.StringCell(raw)
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return models.NumberCell(1)
		}
		return models.NumberCell(0)
	}

	cell := parseValue(raw)
	if cell.Kind != models.CellNumber {
		return cell
	}
	if cellType == excelize.CellTypeDate || styles.isDate(sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(cell.Num, date1904); err == nil {
			return models.DateCell(t)
		}
	}
	return cell
}

// parseValue attempts to parse a raw string value as a number.
func parseValue(s string) models.Cell {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(f)
	}
	return models.StringCell(s)
}

// findDataBounds returns the number of rows and columns up to the last
// non-empty cell. Leading empty rows and columns are kept.
func findDataBounds(rows [][]string) (nrows, ncols int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				nrows = max(nrows, rowIdx+1)
				ncols = max(ncols, colIdx+1)
			}
		}
	}
	return nrows, ncols
}

// builtinDateFormats are the built-in number format ids that render a
// calendar date. Time-only ids are excluded.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

var numFmtLiteralRe = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.`)

// dateStyles caches whether a style id renders a date.
type dateStyles struct {
	f     *excelize.File
	cache map[int]bool
}

func newDateStyles(f *excelize.File) *dateStyles {
	return &dateStyles{f: f, cache: make(map[int]bool)}
}

func (d *dateStyles) isDate(sheetName, cellName string) bool {
	id, err := d.f.GetCellStyle(sheetName, cellName)
	if err != nil || id == 0 {
		return false
	}
	if v, ok := d.cache[id]; ok {
		return v
	}
	v := false
	if style, err := d.f.GetStyle(id); err == nil {
		v = isDateStyle(style)
	}
	d.cache[id] = v
	return v
}

// isDateStyle reports whether a cell style renders a calendar date.
func isDateStyle(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return builtinDateFormats[style.NumFmt]
}

// isDateFormatCode reports whether a custom number format renders a date.
func isDateFormatCode(code string) bool {
	code = strings.ToLower(numFmtLiteralRe.ReplaceAllString(code, ""))
	return strings.ContainsAny(code, "yd")
}
