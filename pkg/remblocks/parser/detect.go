package parser

import (
	"strings"

	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"golang.org/x/text/unicode/norm"
)

// DetectionParams holds parameters for block detection.
type DetectionParams struct {
	// BlankThreshold is the blank-cell fraction that makes a row blank.
	BlankThreshold float64
	// HeaderLookahead bounds the header search to rows before TitleRow+HeaderLookahead.
	HeaderLookahead int
	// BlankRunLimit consecutive blank rows close a block.
	BlankRunLimit int
	// HeaderKeywords mark a header row.
	HeaderKeywords []string
}

// DefaultDetectionParams returns default block detection parameters.
func DefaultDetectionParams() DetectionParams {
	return DetectionParams{
		BlankThreshold:  DefaultBlankThreshold,
		HeaderLookahead: 10,
		BlankRunLimit:   3,
		HeaderKeywords:  DefaultRules().HeaderKeywords,
	}
}

// ScanState is the state of the block detector.
type ScanState int

const (
	// StateScanning looks for a title row.
	StateScanning ScanState = iota
	// StateSeekingHeader looks for the header row below a title.
	StateSeekingHeader
	// StateReadingData walks data rows until a boundary closes the block.
	StateReadingData
	// StateDone means the whole sheet has been scanned.
	StateDone
)

func (s ScanState) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateSeekingHeader:
		return "seeking_header"
	case StateReadingData:
		return "reading_data"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Scan is the mutable cursor of one detection pass over a sheet.
type Scan struct {
	State ScanState
	// Row is the next row to inspect.
	Row int

	title     string
	titleRow  int
	headerRow int
	blankRun  int

	// Blocks holds the descriptors emitted so far.
	Blocks []models.BlockDescriptor
}

// Detector finds titled blocks in a sheet.
type Detector struct {
	classifier *Classifier
	params     DetectionParams
}

// NewDetector creates a detector using classifier for title rows.
func NewDetector(classifier *Classifier, params DetectionParams) *Detector {
	return &Detector{classifier: classifier, params: params}
}

// Detect scans the sheet top to bottom and returns its blocks in order.
func (d *Detector) Detect(sheet *models.Sheet) []models.BlockDescriptor {
	scan := &Scan{}
	for scan.State != StateDone {
		d.Step(sheet, scan)
	}
	return scan.Blocks
}

// Step performs one state transition on scan.
func (d *Detector) Step(sheet *models.Sheet, scan *Scan) {
	nrows := sheet.NumRows()

	switch scan.State {
	case StateScanning:
		if scan.Row >= nrows {
			scan.State = StateDone
			return
		}
		if title, ok := d.classifier.RowTitle(sheet.Row(scan.Row)); ok {
			scan.title = title
			scan.titleRow = scan.Row
			scan.State = StateSeekingHeader
			return
		}
		scan.Row++

	case StateSeekingHeader:
		header, ok := d.findHeader(sheet, scan.titleRow)
		if !ok {
			scan.Row = scan.titleRow + 1
			scan.State = StateScanning
			return
		}
		scan.headerRow = header
		scan.Row = header + 1
		scan.blankRun = 0
		scan.State = StateReadingData

	case StateReadingData:
		if scan.Row >= nrows {
			d.closeBlock(scan, nrows)
			return
		}
		row := sheet.Row(scan.Row)
		if _, ok := d.classifier.RowTitle(row); ok {
			d.closeBlock(scan, scan.Row)
			return
		}
		if IsBlank(row, d.params.BlankThreshold) {
			scan.blankRun++
			if scan.blankRun >= d.params.BlankRunLimit {
				d.closeBlock(scan, scan.Row-scan.blankRun+1)
				return
			}
		} else {
			scan.blankRun = 0
		}
		scan.Row++

	case StateDone:
	}
}

// closeBlock emits the current block ending at end (exclusive) and resumes
// scanning at end. Blocks without data rows are dropped and scanning resumes
// below their title.
func (d *Detector) closeBlock(scan *Scan, end int) {
	scan.State = StateScanning
	if end <= scan.headerRow+1 {
		scan.Row = scan.titleRow + 1
		return
	}
	scan.Blocks = append(scan.Blocks, models.BlockDescriptor{
		Title:     scan.title,
		TitleRow:  scan.titleRow,
		HeaderRow: scan.headerRow,
		DataStart: scan.headerRow + 1,
		DataEnd:   end,
	})
	scan.Row = end
}

// findHeader returns the first non-blank row below titleRow whose text holds
// a header keyword, falling back to the first non-blank row in the window.
func (d *Detector) findHeader(sheet *models.Sheet, titleRow int) (int, bool) {
	limit := min(titleRow+d.params.HeaderLookahead, sheet.NumRows())
	fallback := -1
	for j := titleRow + 1; j < limit; j++ {
		row := sheet.Row(j)
		if IsBlank(row, d.params.BlankThreshold) {
			continue
		}
		if fallback < 0 {
			fallback = j
		}
		if containsAny(rowText(row), d.params.HeaderKeywords) {
			return j, true
		}
	}
	return fallback, fallback >= 0
}

// rowText joins the non-empty cells of row as lowercase text.
func rowText(row []models.Cell) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		if !c.IsEmpty() {
			parts = append(parts, c.String())
		}
	}
	return strings.ToLower(norm.NFC.String(strings.Join(parts, " ")))
}
