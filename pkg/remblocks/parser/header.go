package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackColumn names header cells that carry no usable text.
const FallbackColumn = "col"

var (
	headerStripRe   = regexp.MustCompile(`[^\p{L}\p{N}\p{Z}\s_-]`)
	headerSpaceRe   = regexp.MustCompile(`[\p{Z}\s]+`)
	headerUnderRe   = regexp.MustCompile(`_+`)
	nullHeaderTexts = map[string]bool{"": true, "nan": true, "none": true}
)

// NormalizeHeader turns a raw header cell into a column identifier made of
// lowercase letters, digits, underscores and hyphens.
func NormalizeHeader(cell models.Cell) string {
	if cell.IsBlank() {
		return FallbackColumn
	}
	return normalizeHeaderText(cell.String())
}

func normalizeHeaderText(s string) string {
	s = strings.TrimSpace(s)
	if nullHeaderTexts[strings.ToLower(s)] {
		return FallbackColumn
	}
	s = strings.ReplaceAll(s, "%", "pct")
	s = foldDiacritics(s)
	s = headerStripRe.ReplaceAllString(s, "")
	s = headerSpaceRe.ReplaceAllString(s, "_")
	s = headerUnderRe.ReplaceAllString(s, "_")
	s = strings.ToLower(strings.Trim(s, "_"))
	if nullHeaderTexts[s] {
		return FallbackColumn
	}
	return s
}

// foldDiacritics removes combining marks, so "Período" becomes "Periodo".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// HeaderNamer assigns unique column names within one header row.
type HeaderNamer struct {
	counts map[string]int
	used   map[string]bool
}

// NewHeaderNamer returns a namer with no names issued.
func NewHeaderNamer() *HeaderNamer {
	return &HeaderNamer{counts: make(map[string]int), used: make(map[string]bool)}
}

// Name normalizes cell and suffixes repeats with _1, _2, ...
func (n *HeaderNamer) Name(cell models.Cell) string {
	base := NormalizeHeader(cell)
	name := base
	if _, seen := n.counts[base]; seen || n.used[name] {
		for {
			n.counts[base]++
			name = base + "_" + strconv.Itoa(n.counts[base])
			if !n.used[name] {
				break
			}
		}
	} else {
		n.counts[base] = 0
	}
	n.used[name] = true
	return name
}

// Names names every cell of a header row in order.
func (n *HeaderNamer) Names(row []models.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = n.Name(c)
	}
	return out
}
