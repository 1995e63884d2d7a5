// Package models defines data structures for RMSE curve comparison.
package models

// SheetResult represents the summary computed for a single source sheet.
type SheetResult struct {
	// SheetName is the source sheet the tests were extracted from.
	SheetName string `json:"sheet_name"`
	// OutputPath is the workbook written for this sheet (empty if not written).
	OutputPath string `json:"output_path,omitempty"`
	// Rows contains one summary row per test, in test order.
	Rows []SummaryRow `json:"rows"`
}
