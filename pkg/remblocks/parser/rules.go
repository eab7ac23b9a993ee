// Package parser provides block detection and normalization for report sheets.
package parser

import "strings"

// TitleRules is the catalog used to recognise block titles.
type TitleRules struct {
	// Known are lowercase titles matched by substring in either direction.
	Known []string
	// Short are titles matched exactly (case-sensitive, trimmed).
	Short []string
	// Keywords are lowercase fragments that mark a title candidate.
	Keywords []string
	// MinLength, MaxLength and MaxDigitRatio gate keyword matches.
	MinLength     int
	MaxLength     int
	MaxDigitRatio float64
}

// KeyRule maps a lowercase title to a canonical block key.
type KeyRule struct {
	Key   string
	Match func(title string) bool
}

// SheetVariant appends Suffix to keys of blocks found on sheets whose
// lowercase name contains Marker.
type SheetVariant struct {
	Marker string
	Suffix string
}

// Rules groups every content heuristic the engine relies on, so other report
// layouts can be supported by swapping data instead of code.
type Rules struct {
	Titles TitleRules
	// HeaderKeywords mark a header row when found in its joined lowercase text.
	HeaderKeywords []string
	// PeriodStems mark the period column when found in a normalized column name.
	PeriodStems []string
	// Keys is evaluated in order; the first match wins.
	Keys     []KeyRule
	Variants []SheetVariant
}

// DefaultRules returns the catalog for the BCRA REM result tables.
func DefaultRules() Rules {
	return Rules{
		Titles: TitleRules{
			Known: []string{
				"precios minoristas (ipc nivel general-nacional; indec)",
				"precios minoristas (ipc núcleo-nacional; indec)",
				"tasa de interés (tamar)",
				"tipo de cambio nominal",
				"exportaciones",
				"importaciones",
				"resultado primario del spnf",
				"desocupación abierta",
				"pib a precios constantes",
			},
			Short: []string{"Exportaciones", "Importaciones", "PIB a precios constantes"},
			Keywords: []string{
				"precios minoristas",
				"ipc nivel general",
				"ipc núcleo",
				"tasa de interés",
				"tamar",
				"tipo de cambio nominal",
				"resultado primario",
				"spnf",
				"desocupación",
				"pib a precios constantes",
			},
			MinLength:     3,
			MaxLength:     200,
			MaxDigitRatio: 0.3,
		},
		HeaderKeywords: []string{"período", "periodo", "mes", "año", "trimestre", "referencia", "fecha"},
		PeriodStems:    []string{"period", "per_od", "fecha", "mes", "trimestre"},
		Keys: []KeyRule{
			{Key: "ipc_general", Match: anyOf(contains("ipc nivel general"), allOf("nivel general", "ipc"))},
			{Key: "ipc_nucleo", Match: anyOf(contains("ipc núcleo", "ipc nucleo"), allOf("núcleo", "ipc"))},
			{Key: "tasa_interes", Match: contains("tamar", "tasa de interés", "tasa de interes")},
			{Key: "tipo_cambio", Match: contains("tipo de cambio")},
			{Key: "exportaciones", Match: contains("exportaciones")},
			{Key: "importaciones", Match: contains("importaciones")},
			{Key: "resultado_primario", Match: contains("resultado primario", "spnf")},
			{Key: "desocupacion", Match: contains("desocupación", "desocupacion")},
			{Key: "pbi", Match: contains("pib", "producto bruto")},
		},
		Variants: []SheetVariant{{Marker: "top", Suffix: "_top10"}},
	}
}

// contains matches when the title contains any of subs.
func contains(subs ...string) func(string) bool {
	return func(s string) bool {
		return containsAny(s, subs)
	}
}

// allOf matches when the title contains every one of subs.
func allOf(subs ...string) func(string) bool {
	return func(s string) bool {
		for _, sub := range subs {
			if !strings.Contains(s, sub) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if p(s) {
				return true
			}
		}
		return false
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
