package output

import (
	"encoding/json"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
)

// ToJSON renders sheet results as JSON.
func ToJSON(results []models.SheetResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}
