package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/xuri/excelize/v2"
)

// ErrInfinite indicates a cell holding an infinite value.
var ErrInfinite = errors.New("infinite value")

// missingMarkers are cell texts read as missing values, and therefore as 0.
// They are the usual "not available" spellings plus the worksheet error literals.
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
	"#NULL!": true, "#DIV/0!": true, "#VALUE!": true, "#REF!": true,
	"#NAME?": true, "#NUM!": true, "#GETTING_DATA": true,
}

// CellError reports a cell that could not be read as a number.
type CellError struct {
	Cell  string
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: cannot parse %q as number: %v", e.Cell, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ExtractBlock reads rows rows (starting at row 1, no header) of every column
// in r and flattens them row by row. Blank, missing and error cells become 0.
func ExtractBlock(f *excelize.File, sheetName string, r models.ColumnRange, rows int) ([]float64, error) {
	start, end, err := ColumnBounds(r.String())
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, rows*(end-start+1))
	for row := 1; row <= rows; row++ {
		for col := start; col <= end; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			if cellType == excelize.CellTypeError {
				values = append(values, 0)
				continue
			}
			raw, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			v, err := parseValue(raw)
			if err != nil {
				return nil, &CellError{Cell: cellName, Value: raw, Err: err}
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// ExtractSeries fills in the OL and OT series of every test from the sheet.
// The returned slice keeps the order of tests.
func ExtractSeries(f *excelize.File, sheetName string, tests []models.TestCase, rows int) ([]models.TestCase, error) {
	result := make([]models.TestCase, 0, len(tests))
	for _, tc := range tests {
		for _, ch := range models.Channels {
			values, err := ExtractBlock(f, sheetName, tc.Ranges.Get(ch), rows)
			if err != nil {
				return nil, &ChannelError{Test: tc.Name, Channel: ch, Err: err}
			}
			tc.Series.Set(ch, values)
		}
		result = append(result, tc)
	}
	return result, nil
}

// ChannelError reports which test and channel failed to extract.
type ChannelError struct {
	Test    string
	Channel models.Channel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Test, e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// parseValue parses a raw cell value. Blank cells and missing markers read
// as 0. Infinite values are rejected.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || missingMarkers[s] {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(v):
		return 0, nil
	case math.IsInf(v, 0):
		return 0, ErrInfinite
	}
	return v, nil
}
