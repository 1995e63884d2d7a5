// Package parser provides spreadsheet reading utilities.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/xuri/excelize/v2"
)

// ColumnLabel returns the spreadsheet column label for a 1-based index
// (1 -> A, 26 -> Z, 27 -> AA). It returns "" for index < 1.
func ColumnLabel(index int) string {
	var buf []byte
	for index > 0 {
		rem := (index - 1) % 26
		index = (index - 1) / 26
		buf = append(buf, byte('A'+rem))
	}
	// letters were produced least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnIndex decodes a column label back to its 1-based index.
// Lowercase letters are accepted.
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("empty column label")
	}
	result := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column label %q", label)
		}
		result = result*26 + int(r-'A') + 1
	}
	return result, nil
}

// ParseColumnRange parses a range string like B:B or B:D.
// Both ends must be valid worksheet columns and Start must not exceed End.
func ParseColumnRange(rangeStr string) (models.ColumnRange, error) {
	start, end, err := ColumnBounds(rangeStr)
	if err != nil {
		return models.ColumnRange{}, err
	}
	return models.ColumnRange{Start: ColumnLabel(start), End: ColumnLabel(end)}, nil
}

// ColumnBounds returns the 1-based first and last column numbers of a range
// string like B:D. A single column (B) spans itself.
func ColumnBounds(rangeStr string) (int, int, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid column range %q", rangeStr)
	}

	start, err := excelize.ColumnNameToNumber(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", rangeStr, err)
	}
	end, err := excelize.ColumnNameToNumber(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column range %q: %w", rangeStr, err)
	}
	if start > end {
		return 0, 0, fmt.Errorf("invalid column range %q: start after end", rangeStr)
	}
	return start, end, nil
}

// TestLayout describes where test data sits in a sheet.
type TestLayout struct {
	// FirstColumn is the 1-based column of the first test's OL data.
	FirstColumn int
	// ChannelGap is the distance from a test's OL column to its OT column.
	ChannelGap int
	// Stride is the distance between consecutive tests.
	Stride int
}

// DefaultTestLayout returns the layout used by the simulation export:
// OL in B, OT in D, next test four columns to the right.
func DefaultTestLayout() TestLayout {
	return TestLayout{
		FirstColumn: 2,
		ChannelGap:  2,
		Stride:      4,
	}
}

// TestRanges generates n test cases named test1..testN with single-column
// ranges laid out according to layout.
func TestRanges(n int, layout TestLayout) []models.TestCase {
	tests := make([]models.TestCase, 0, n)
	for i := 0; i < n; i++ {
		ol := ColumnLabel(layout.FirstColumn + i*layout.Stride)
		ot := ColumnLabel(layout.FirstColumn + i*layout.Stride + layout.ChannelGap)
		tests = append(tests, models.TestCase{
			Name: fmt.Sprintf("test%d", i+1),
			Ranges: models.ColumnRanges{
				OL: models.ColumnRange{Start: ol, End: ol},
				OT: models.ColumnRange{Start: ot, End: ot},
			},
		})
	}
	return tests
}
