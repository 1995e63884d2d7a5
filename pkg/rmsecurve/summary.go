package rmsecurve

import (
	"fmt"

	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/models"
	"github.com/ukaji3/rmsecurve-go/pkg/rmsecurve/rmse"
)

// BuildSummary computes one summary row per test, keeping the order of tests.
// For each length L only the first L points of the reference and of the
// extracted series are compared.
func BuildSummary(ref models.Reference, tests []models.TestCase, lengths []int) ([]models.SummaryRow, error) {
	rows := make([]models.SummaryRow, 0, len(tests))
	for _, tc := range tests {
		row := models.SummaryRow{
			TestName: tc.Name,
			Metrics:  make([]models.LengthMetrics, 0, len(lengths)),
		}
		for _, length := range lengths {
			ol, err := channelRMSE(ref, tc.Series, models.ChannelOL, length)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", tc.Name, err)
			}
			ot, err := channelRMSE(ref, tc.Series, models.ChannelOT, length)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", tc.Name, err)
			}
			row.Metrics = append(row.Metrics, models.LengthMetrics{
				Length:  length,
				OL:      ol,
				OT:      ot,
				Average: (ol + ot) / 2,
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func channelRMSE(ref, sim models.Series, ch models.Channel, length int) (float64, error) {
	r := ref.Get(ch)
	if length > len(r) {
		return 0, fmt.Errorf("%s length %d exceeds %d reference points", ch, length, len(r))
	}
	s := sim.Get(ch)
	if length < len(s) {
		s = s[:length]
	}
	v, err := rmse.Calculate(r[:length], s)
	if err != nil {
		return 0, fmt.Errorf("%s length %d: %w", ch, length, err)
	}
	return v, nil
}
