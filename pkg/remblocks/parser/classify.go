package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"golang.org/x/text/unicode/norm"
)

// DefaultBlankThreshold is the fraction of blank cells that makes a row blank.
const DefaultBlankThreshold = 0.8

// IsBlank reports whether at least threshold of the row's cells are blank.
// A row without cells is blank.
func IsBlank(row []models.Cell, threshold float64) bool {
	if len(row) == 0 {
		return true
	}
	blank := 0
	for _, c := range row {
		if c.IsBlank() {
			blank++
		}
	}
	return float64(blank)/float64(len(row)) >= threshold
}

// Classifier decides whether cells are block titles.
type Classifier struct {
	rules TitleRules
}

// NewClassifier creates a classifier over the given title catalog.
func NewClassifier(rules TitleRules) *Classifier {
	return &Classifier{rules: rules}
}

// IsTitle reports whether a single cell names a block.
func (c *Classifier) IsTitle(cell models.Cell) bool {
	if cell.Kind != models.CellString {
		return false
	}
	return c.isTitleText(cell.Str)
}

// RowTitle returns the trimmed text of the first title cell in row.
func (c *Classifier) RowTitle(row []models.Cell) (string, bool) {
	for _, cell := range row {
		if c.IsTitle(cell) {
			return strings.TrimSpace(cell.Str), true
		}
	}
	return "", false
}

func (c *Classifier) isTitleText(s string) bool {
	original := strings.TrimSpace(norm.NFC.String(s))
	if original == "" {
		return false
	}
	text := strings.ToLower(original)

	for _, known := range c.rules.Known {
		if strings.Contains(text, known) || strings.Contains(known, text) {
			return true
		}
	}

	if utf8.RuneCountInString(original) < c.rules.MinLength {
		return false
	}
	for _, short := range c.rules.Short {
		if original == short {
			return true
		}
	}
	if !containsAny(text, c.rules.Keywords) {
		return false
	}

	// Long or digit-heavy text is a data row that happens to carry a keyword.
	length := utf8.RuneCountInString(text)
	if length >= c.rules.MaxLength {
		return false
	}
	return digitRatio(text, length) < c.rules.MaxDigitRatio
}

func digitRatio(s string, length int) float64 {
	if length == 0 {
		return 0
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return float64(digits) / float64(length)
}
