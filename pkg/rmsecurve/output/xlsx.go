// Package output serializes RMSE summaries.
package output

import (
	"fmt"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/xuri/excelize/v2"
)

// TestNameHeader is the header of the first column.
const TestNameHeader = "Test Name"

// FileName returns the result workbook name for a sheet.
func FileName(scriptName, sheetName, suffix string) string {
	return fmt.Sprintf("%s_%s%s.xlsx", scriptName, sheetName, suffix)
}

// Header returns the column headers for rows computed over lengths.
// Columns are grouped by length: OL, OT then Average.
func Header(lengths []int) []string {
	header := make([]string, 0, 1+3*len(lengths))
	header = append(header, TestNameHeader)
	for _, l := range lengths {
		header = append(header,
			fmt.Sprintf("OL RMSE (Length %d)", l),
			fmt.Sprintf("OT RMSE (Length %d)", l),
			fmt.Sprintf("Average RMSE (Length %d)", l),
		)
	}
	return header
}

// WriteWorkbook writes rows to a new workbook at path with a single sheet
// named sheetName. The header covers lengths; each row must hold one metric
// per length in the same order. An existing file at path is overwritten.
func WriteWorkbook(path, sheetName string, lengths []int, rows []models.SummaryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return err
		}
	}

	header := Header(lengths)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		if len(row.Metrics) != len(lengths) {
			return fmt.Errorf("%s: %d metrics for %d lengths", row.TestName, len(row.Metrics), len(lengths))
		}
		values := make([]interface{}, 0, 1+3*len(row.Metrics))
		values = append(values, row.TestName)
		for _, m := range row.Metrics {
			values = append(values, m.OL, m.OT, m.Average)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
