package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxGenericKeyLength bounds keys synthesized from unrecognised titles.
const MaxGenericKeyLength = 30

// FallbackKey names blocks whose title leaves no key characters.
const FallbackKey = "bloque"

var (
	keyStripRe = regexp.MustCompile(`[^\p{L}\p{N}\p{Z}\s_]`)
	keySpaceRe = regexp.MustCompile(`[\p{Z}\s]+`)
)

// KeyCollector records the keys issued during one extraction run.
type KeyCollector struct {
	used map[string]bool
}

// NewKeyCollector returns an empty collector.
func NewKeyCollector() *KeyCollector {
	return &KeyCollector{used: make(map[string]bool)}
}

// Issue returns key, or key_2, key_3, ... when key is taken, and records it.
func (kc *KeyCollector) Issue(key string) string {
	final := key
	for n := 2; kc.used[final]; n++ {
		final = key + "_" + strconv.Itoa(n)
	}
	kc.used[final] = true
	return final
}

// Has reports whether key was issued.
func (kc *KeyCollector) Has(key string) bool {
	return kc.used[key]
}

// Len returns the number of issued keys.
func (kc *KeyCollector) Len() int {
	return len(kc.used)
}

// KeyGenerator maps block titles to machine-friendly keys.
type KeyGenerator struct {
	rules    []KeyRule
	variants []SheetVariant
}

// NewKeyGenerator creates a generator from ordered key rules and sheet variants.
func NewKeyGenerator(rules []KeyRule, variants []SheetVariant) *KeyGenerator {
	return &KeyGenerator{rules: rules, variants: variants}
}

// MakeKey returns a key for title found on sheet that is unique within collector.
func (g *KeyGenerator) MakeKey(title, sheet string, collector *KeyCollector) string {
	return collector.Issue(g.BaseKey(title) + g.sheetSuffix(sheet))
}

// BaseKey returns the canonical key for title, or a key derived from its text.
func (g *KeyGenerator) BaseKey(title string) string {
	lower := strings.ToLower(norm.NFC.String(title))
	for _, r := range g.rules {
		if r.Match(lower) {
			return r.Key
		}
	}
	key := keyStripRe.ReplaceAllString(lower, "")
	key = keySpaceRe.ReplaceAllString(strings.TrimSpace(key), "_")
	if key == "" {
		return FallbackKey
	}
	if rs := []rune(key); len(rs) > MaxGenericKeyLength {
		key = string(rs[:MaxGenericKeyLength])
	}
	return key
}

func (g *KeyGenerator) sheetSuffix(sheet string) string {
	lower := strings.ToLower(sheet)
	for _, v := range g.variants {
		if strings.Contains(lower, v.Marker) {
			return v.Suffix
		}
	}
	return ""
}
