package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
)

// dateLayouts are tried in order before any inference.
var dateLayouts = []string{
	"2006-1-2",
	"2/1/2006",
	"1/2006",
	"2006/1",
	"2006",
}

// inferredLayouts cover the remaining common renderings of a period.
var inferredLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2006",
	"January 2006",
	"Jan-2006",
	"Jan-06",
	"2 Jan 2006",
	"January 2, 2006",
}

var (
	quarterRe    = regexp.MustCompile(`^(\d{4})\s*-?\s*[Qq]([1-4])$`)
	monthNameRe  = regexp.MustCompile(`^([[:alpha:]]+)\.?[\s\-/]*(\d{2}|\d{4})$`)
	spanishMonth = map[string]time.Month{
		"ene": time.January, "enero": time.January,
		"feb": time.February, "febrero": time.February,
		"mar": time.March, "marzo": time.March,
		"abr": time.April, "abril": time.April,
		"may": time.May, "mayo": time.May,
		"jun": time.June, "junio": time.June,
		"jul": time.July, "julio": time.July,
		"ago": time.August, "agosto": time.August,
		"sep": time.September, "sept": time.September, "septiembre": time.September, "setiembre": time.September,
		"oct": time.October, "octubre": time.October,
		"nov": time.November, "noviembre": time.November,
		"dic": time.December, "diciembre": time.December,
	}
)

// ToDate converts a cell to a YYYY-MM-DD string. Text that cannot be read
// as a date is returned trimmed, since periods such as "2º trim. 2025" are
// valid labels. Empty cells yield nil.
func ToDate(cell models.Cell) any {
	switch cell.Kind {
	case models.CellEmpty:
		return nil
	case models.CellDate:
		return cell.Time.Format(time.DateOnly)
	case models.CellNumber:
		if math.IsNaN(cell.Num) {
			return nil
		}
	}

	s := strings.TrimSpace(cell.String())
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	if t, ok := inferDate(s); ok {
		return t.Format(time.DateOnly)
	}
	return s
}

func inferDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inferredLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if m := quarterRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		return time.Date(year, time.Month(3*(q-1)+1), 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := monthNameRe.FindStringSubmatch(strings.ToLower(s)); m != nil {
		month, ok := spanishMonth[m[1]]
		if !ok {
			return time.Time{}, false
		}
		year, _ := strconv.Atoi(m[2])
		if len(m[2]) == 2 {
			year += 2000
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

var numberCleaner = strings.NewReplacer("%", "", "$", "", ",", ".", " ", "", "\u00a0", "")

// ToNumber converts a cell to a float64. Text that does not parse is
// returned trimmed, because some columns mix figures and descriptive text.
// Empty cells and NaN yield nil.
func ToNumber(cell models.Cell) any {
	switch cell.Kind {
	case models.CellEmpty:
		return nil
	case models.CellNumber:
		if math.IsNaN(cell.Num) {
			return nil
		}
		if math.IsInf(cell.Num, 0) {
			return cell.String()
		}
		return cell.Num
	case models.CellDate:
		return cell.String()
	}

	original := strings.TrimSpace(cell.Str)
	clean := numberCleaner.Replace(original)
	if clean == "" || strings.ContainsAny(clean, "xX_") {
		return original
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return original
	}
	if math.IsNaN(f) {
		return nil
	}
	if math.IsInf(f, 0) {
		return original
	}
	return f
}
