package rmsecurve

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/output"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the configured tests from one sheet of an open workbook.
func Extract(f *excelize.File, sheetName string, cfg Config) ([]models.TestCase, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		if err == nil {
			err = ErrSheetNotFound
		}
		return nil, NewExtractionError(sheetName, "", "", err)
	}

	tests, err := parser.ExtractSeries(f, sheetName, cfg.TestCases(), cfg.Rows)
	if err != nil {
		var chErr *parser.ChannelError
		if errors.As(err, &chErr) {
			return nil, NewExtractionError(sheetName, chErr.Test, chErr.Channel, chErr.Err)
		}
		return nil, NewExtractionError(sheetName, "", "", err)
	}
	return tests, nil
}

// Reporter is called with each sheet result as soon as its workbook is written.
type Reporter func(models.SheetResult)

// openWorkbook validates cfg and opens the input workbook.
func openWorkbook(cfg Config) (*excelize.File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.FilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, cfg.FilePath)
	}

	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return f, nil
}

// summarizeSheet extracts the tests of one sheet and computes their summary.
func summarizeSheet(f *excelize.File, sheetName string, cfg Config, logger *slog.Logger) (models.SheetResult, error) {
	logger.Info("processing sheet", "sheet", sheetName, "tests", cfg.Tests, "rows", cfg.Rows)

	tests, err := Extract(f, sheetName, cfg)
	if err != nil {
		return models.SheetResult{}, err
	}
	for _, tc := range tests {
		logger.Debug("extracted test",
			"sheet", sheetName,
			"test", tc.Name,
			"ol_range", tc.Ranges.OL.String(),
			"ot_range", tc.Ranges.OT.String())
	}

	rows, err := BuildSummary(cfg.Reference, tests, cfg.Lengths)
	if err != nil {
		return models.SheetResult{}, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return models.SheetResult{SheetName: sheetName, Rows: rows}, nil
}

// Summarize opens the configured workbook and computes the summary of every
// configured sheet without writing anything.
func Summarize(cfg Config, logger *slog.Logger) ([]models.SheetResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := openWorkbook(cfg)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	results := make([]models.SheetResult, 0, len(cfg.SheetNames))
	for _, sheetName := range cfg.SheetNames {
		res, err := summarizeSheet(f, sheetName, cfg, logger)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Run processes the configured sheets in order. Each sheet is summarized and
// its result workbook written (overwriting existing files) before the next
// sheet is read; report, when non-nil, is called after every write. On error
// the results written so far are returned along with it.
func Run(cfg Config, logger *slog.Logger, report Reporter) ([]models.SheetResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := openWorkbook(cfg)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]models.SheetResult, 0, len(cfg.SheetNames))
	for _, sheetName := range cfg.SheetNames {
		res, err := summarizeSheet(f, sheetName, cfg, logger)
		if err != nil {
			return results, err
		}

		path := filepath.Join(cfg.OutputDir, output.FileName(cfg.ScriptName, sheetName, cfg.OutputSuffix))
		if err := output.WriteWorkbook(path, sheetName, cfg.Lengths, res.Rows); err != nil {
			return results, fmt.Errorf("failed to write results for sheet %q: %w", sheetName, err)
		}
		res.OutputPath = path
		logger.Info("wrote results", "sheet", sheetName, "path", path, "rows", len(res.Rows))

		results = append(results, res)
		if report != nil {
			report(res)
		}
	}
	return results, nil
}
