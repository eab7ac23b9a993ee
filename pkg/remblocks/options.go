// Package remblocks extracts titled data blocks from market expectation
// report workbooks.
package remblocks

import (
	"log/slog"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/parser"
)

// Default sheet names of the REM workbook.
const (
	SheetResults      = "Cuadros de resultados"
	SheetTop10Results = "Resultados TOP 10"
)

// Options configures extraction behavior.
type Options struct {
	// Sheets lists the sheets to process, in order.
	// If empty, defaults to the result and top-10 result sheets.
	Sheets []string
	// Rules holds the title, header, period and key catalogs.
	// If nil, parser.DefaultRules is used.
	Rules *parser.Rules
	// Detection tunes the block detector. HeaderKeywords is taken from
	// Rules and zero values fall back to parser.DefaultDetectionParams.
	Detection parser.DetectionParams
	// Logger receives progress and advisory messages.
	// If nil, slog.Default is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Sheets:    []string{SheetResults, SheetTop10Results},
		Detection: parser.DefaultDetectionParams(),
	}
}

// SheetNames returns the sheets to process.
func (o Options) SheetNames() []string {
	if len(o.Sheets) > 0 {
		return o.Sheets
	}
	return DefaultOptions().Sheets
}

// EffectiveRules returns the rules to apply.
func (o Options) EffectiveRules() parser.Rules {
	if o.Rules != nil {
		return *o.Rules
	}
	return parser.DefaultRules()
}

// DetectionParams returns the detector parameters with defaults applied.
func (o Options) DetectionParams() parser.DetectionParams {
	def := parser.DefaultDetectionParams()
	p := o.Detection
	if p.BlankThreshold <= 0 {
		p.BlankThreshold = def.BlankThreshold
	}
	if p.HeaderLookahead <= 0 {
		p.HeaderLookahead = def.HeaderLookahead
	}
	if p.BlankRunLimit <= 0 {
		p.BlankRunLimit = def.BlankRunLimit
	}
	p.HeaderKeywords = o.EffectiveRules().HeaderKeywords
	return p
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
