package models

// LengthMetrics holds the RMSE values computed over the first Length points.
type LengthMetrics struct {
	// Length is the truncation length.
	Length int `json:"length"`
	// OL is the RMSE of the OL channel.
	OL float64 `json:"ol_rmse"`
	// OT is the RMSE of the OT channel.
	OT float64 `json:"ot_rmse"`
	// Average is (OL + OT) / 2.
	Average float64 `json:"average_rmse"`
}

// SummaryRow is the RMSE summary of a single test.
type SummaryRow struct {
	// TestName is the test the metrics belong to.
	TestName string `json:"test_name"`
	// Metrics contains one entry per truncation length, in configured order.
	Metrics []LengthMetrics `json:"metrics"`
}
