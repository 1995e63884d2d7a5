package rmsecurve

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a configured sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidConfig indicates the configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// ExtractionError represents an error while processing a sheet.
type ExtractionError struct {
	SheetName string
	Test      string         // empty when the error is not tied to a test
	Channel   models.Channel // empty when the error is not tied to a channel
	Err       error
}

func (e *ExtractionError) Error() string {
	switch {
	case e.Test == "":
		return fmt.Sprintf("extraction error in sheet %q: %v", e.SheetName, e.Err)
	case e.Channel == "":
		return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Test, e.Err)
	default:
		return fmt.Sprintf("extraction error in sheet %q (%s %s): %v", e.SheetName, e.Test, e.Channel, e.Err)
	}
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, test string, channel models.Channel, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Test:      test,
		Channel:   channel,
		Err:       err,
	}
}
