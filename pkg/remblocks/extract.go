package remblocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/ukaji3/remblocks-go/pkg/remblocks/models"
	"github.com/ukaji3/remblocks-go/pkg/remblocks/parser"
	"github.com/xuri/excelize/v2"
)

// Extract extracts every block of the configured sheets of an Excel file.
func Extract(ctx context.Context, path string, opts Options) (*models.ResultSet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, filepath.Base(path), err)
	}
	defer f.Close()

	opts.Logger = opts.logger().With("file", filepath.Base(path))
	return ExtractWorkbook(ctx, f, opts)
}

// ExtractReader extracts blocks from a workbook read from r.
func ExtractReader(ctx context.Context, r io.Reader, opts Options) (*models.ResultSet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ExtractWorkbook(ctx, f, opts)
}

// ExtractWorkbook runs one extraction over an open workbook. Sheets and
// blocks are processed in order; a block that fails to normalize is logged
// and skipped.
func ExtractWorkbook(ctx context.Context, f *excelize.File, opts Options) (*models.ResultSet, error) {
	log := opts.logger().With("run_id", uuid.NewString())
	rules := opts.EffectiveRules()

	run := &extraction{
		detector:   parser.NewDetector(parser.NewClassifier(rules.Titles), opts.DetectionParams()),
		normalizer: parser.NewNormalizer(rules.PeriodStems),
		keys:       parser.NewKeyGenerator(rules.Keys, rules.Variants),
		collector:  parser.NewKeyCollector(),
		result:     models.NewResultSet(),
		log:        log,
	}

	available := f.GetSheetList()
	var sheets []string
	for _, name := range opts.SheetNames() {
		if !slices.Contains(available, name) {
			log.Warn("sheet not found in workbook", "sheet", name)
			continue
		}
		sheets = append(sheets, name)
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: want %q, workbook has %q", ErrNoSheets, opts.SheetNames(), available)
	}

	for _, name := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheet, err := parser.LoadSheet(f, name)
		if err != nil {
			return nil, NewExtractionError(name, ComponentLoad, err)
		}
		run.processSheet(sheet)
	}

	log.Info("extraction finished", "sheets", len(sheets), "blocks", run.result.Len())
	return run.result, nil
}

// extraction holds the state of one run.
type extraction struct {
	detector   *parser.Detector
	normalizer *parser.Normalizer
	keys       *parser.KeyGenerator
	collector  *parser.KeyCollector
	result     *models.ResultSet
	log        *slog.Logger
}

func (x *extraction) processSheet(sheet *models.Sheet) {
	log := x.log.With("sheet", sheet.Name)
	log.Info("processing sheet", "rows", sheet.NumRows(), "columns", sheet.Width())

	blocks := x.detector.Detect(sheet)
	if len(blocks) == 0 {
		log.Warn("no blocks detected")
		return
	}
	log.Debug("blocks detected", "count", len(blocks))

	for i, block := range blocks {
		blog := log.With("block", i+1, "title", block.Title)
		table, err := x.normalize(sheet, block)
		if err != nil {
			blog.Error("skipping block", "error", err)
			continue
		}
		if err := x.result.Add(table); err != nil {
			blog.Error("skipping block", "error", err)
			continue
		}
		blog.Info("block extracted", "key", table.Key, "rows", table.Rows, "columns", len(table.Columns))
	}
}

// normalize builds the table for block and assigns its key. A panic inside
// conversion is reported as an error for that block only.
func (x *extraction) normalize(sheet *models.Sheet, block models.BlockDescriptor) (table *models.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			table, err = nil, x.blockError(sheet, block, fmt.Errorf("panic: %v", r))
		}
	}()

	table, err = x.normalizer.Normalize(sheet, block)
	if err != nil {
		return nil, x.blockError(sheet, block, err)
	}
	table.Key = x.keys.MakeKey(block.Title, sheet.Name, x.collector)
	return table, nil
}

func (x *extraction) blockError(sheet *models.Sheet, block models.BlockDescriptor, err error) error {
	e := NewExtractionError(sheet.Name, ComponentNormalize, err)
	e.Block = block.Title
	return e
}
