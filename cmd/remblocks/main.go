// Package main provides the CLI entry point for remblocks-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/remblocks-go/internal/config"
	"github.com/ukaji3/remblocks-go/internal/logging"
	"github.com/ukaji3/remblocks-go/pkg/remblocks"
	"github.com/ukaji3/remblocks-go/pkg/remblocks/output"
)

var errNoTables = errors.New("no blocks were extracted")

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	outputPath string
	tablesDir  string
	noTables   bool
	pretty     bool
	sheets     []string
	dataDir    string
	pattern    string
	threshold  float64
	timeout    time.Duration
	logLevel   string
	logFormat  string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	fl := &flags{}

	rootCmd := &cobra.Command{
		Use:   "remblocks [input.xlsx]",
		Short: "Extract result tables from REM workbooks",
		Long: `remblocks-go detects the titled tables of a market expectations survey
workbook, normalizes their columns, dates and numbers, and writes JSON.

Without an input path the newest workbook in the data directory is used.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, fl, args)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&fl.outputPath, "output", "o", "", "Master output file (default: <output dir>/"+cfg.Output.MasterFile+")")
	f.StringVar(&fl.tablesDir, "tables-dir", cfg.Output.Dir, "Directory for per-table output files")
	f.BoolVar(&fl.noTables, "no-tables", false, "Skip per-table output files")
	f.BoolVar(&fl.pretty, "pretty", cfg.Output.Pretty, "Pretty-print JSON output")
	f.StringSliceVar(&fl.sheets, "sheet", cfg.Extract.Sheets, "Sheet to process (repeatable)")
	f.StringVar(&fl.dataDir, "data-dir", cfg.Input.DataDir, "Directory searched for the newest workbook")
	f.StringVar(&fl.pattern, "pattern", cfg.Input.FilePattern, "Workbook file name pattern inside the data directory")
	f.Float64Var(&fl.threshold, "blank-threshold", cfg.Extract.BlankThreshold, "Fraction of empty cells that makes a row blank")
	f.DurationVar(&fl.timeout, "timeout", cfg.Extract.Timeout, "Wall-clock budget for the run (0 for none)")
	f.StringVar(&fl.logLevel, "log-level", cfg.Logging.Level, "Log level: debug, info, warn, error")
	f.StringVar(&fl.logFormat, "log-format", cfg.Logging.Format, "Log format: text or json")

	return rootCmd
}

// validate applies the checks config.Validate makes on the values flags
// can override.
func (fl *flags) validate() error {
	var errs []error
	if fl.threshold <= 0 || fl.threshold > 1 {
		errs = append(errs, fmt.Errorf("--blank-threshold must be in (0, 1], got %v", fl.threshold))
	}
	if fl.timeout < 0 {
		errs = append(errs, fmt.Errorf("--timeout must not be negative, got %v", fl.timeout))
	}
	if len(fl.sheets) == 0 {
		errs = append(errs, errors.New("--sheet must name at least one sheet"))
	}
	return errors.Join(errs...)
}

func run(ctx context.Context, cfg *config.Config, fl *flags, args []string) error {
	if err := fl.validate(); err != nil {
		return err
	}
	logger := logging.Setup(fl.logLevel, fl.logFormat, os.Stderr)

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	} else {
		latest, err := remblocks.LatestWorkbook(fl.dataDir, fl.pattern)
		if err != nil {
			return err
		}
		inputPath = latest
	}
	logger.Info("reading workbook", "path", inputPath)

	if ctx == nil {
		ctx = context.Background()
	}
	if fl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, fl.timeout)
		defer cancel()
	}

	opts := remblocks.DefaultOptions()
	opts.Sheets = fl.sheets
	opts.Detection.BlankThreshold = fl.threshold
	opts.Logger = logger

	rs, err := remblocks.Extract(ctx, inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if rs.Len() == 0 {
		logger.Error("no blocks were extracted")
		return errNoTables
	}

	masterPath := fl.outputPath
	if masterPath == "" {
		masterPath = filepath.Join(cfg.Output.Dir, cfg.Output.MasterFile)
	}
	if err := output.WriteMaster(rs, masterPath, fl.pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !fl.noTables {
		paths, err := output.WriteTables(rs, fl.tablesDir, fl.pretty)
		if err != nil {
			return fmt.Errorf("failed to write table files: %w", err)
		}
		logger.Debug("table files written", "count", len(paths), "dir", fl.tablesDir)
	}

	logger.Info("extraction complete",
		slog.String("master", masterPath),
		slog.Int("tables", rs.Len()),
	)
	return nil
}
