package parser

import (
	"strings"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
)

// Normalizer projects detected blocks into rectangular tables.
type Normalizer struct {
	periodStems []string
}

// NewNormalizer creates a normalizer that picks the period column by stems.
func NewNormalizer(periodStems []string) *Normalizer {
	return &Normalizer{periodStems: periodStems}
}

// Normalize builds the table described by block. The period column is
// converted with ToDate and every other column with ToNumber. The caller
// assigns the table key.
func (n *Normalizer) Normalize(sheet *models.Sheet, block models.BlockDescriptor) (*models.Table, error) {
	if err := block.Validate(sheet.NumRows()); err != nil {
		return nil, err
	}

	header := sheet.Row(block.HeaderRow)
	names := NewHeaderNamer().Names(header)
	rows := sheet.Rows[block.DataStart:block.DataEnd]

	width := len(names)
	for _, r := range rows {
		width = min(width, len(r))
	}
	names = names[:width]

	rows = dropEmptyRows(rows, width)
	keep := nonEmptyColumns(rows, width)

	columns := make([]string, 0, len(keep))
	for _, c := range keep {
		columns = append(columns, names[c])
	}
	period := n.periodColumn(columns)

	data := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		row := make(models.Row, len(keep))
		for i, c := range keep {
			var v any
			if i == period {
				v = ToDate(r[c])
			} else {
				v = ToNumber(r[c])
			}
			row[i] = models.Field{Column: columns[i], Value: v}
		}
		data = append(data, row)
	}

	return &models.Table{
		Title:   block.Title,
		Sheet:   sheet.Name,
		Rows:    len(data),
		Columns: columns,
		Data:    data,
	}, nil
}

// periodColumn returns the index of the first column whose name holds a
// period stem, or -1.
func (n *Normalizer) periodColumn(columns []string) int {
	for i, c := range columns {
		for _, stem := range n.periodStems {
			if strings.Contains(c, stem) {
				return i
			}
		}
	}
	return -1
}

func dropEmptyRows(rows [][]models.Cell, width int) [][]models.Cell {
	out := make([][]models.Cell, 0, len(rows))
	for _, r := range rows {
		for c := 0; c < width; c++ {
			if !r[c].IsEmpty() {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func nonEmptyColumns(rows [][]models.Cell, width int) []int {
	var keep []int
	for c := 0; c < width; c++ {
		for _, r := range rows {
			if !r[c].IsEmpty() {
				keep = append(keep, c)
				break
			}
		}
	}
	return keep
}
