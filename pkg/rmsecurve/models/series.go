package models

// Channel names a measurement channel of a test.
type Channel string

const (
	// ChannelOL is the OL measurement channel.
	ChannelOL Channel = "OL"
	// ChannelOT is the OT measurement channel.
	ChannelOT Channel = "OT"
)

// Channels lists the measurement channels in extraction order.
var Channels = []Channel{ChannelOL, ChannelOT}

// Series holds the flattened values of both channels.
type Series struct {
	OL []float64 `json:"ol" yaml:"ol"`
	OT []float64 `json:"ot" yaml:"ot"`
}

// Get returns the values of the given channel.
func (s Series) Get(ch Channel) []float64 {
	if ch == ChannelOT {
		return s.OT
	}
	return s.OL
}

// Set replaces the values of the given channel.
func (s *Series) Set(ch Channel, values []float64) {
	if ch == ChannelOT {
		s.OT = values
		return
	}
	s.OL = values
}

// Reference is the experimentally measured curve that simulations are compared against.
type Reference = Series

// TestCase represents one simulated test and where its data lives in the sheet.
type TestCase struct {
	// Name is the test name ("test1", "test2", ...).
	Name string `json:"name"`
	// Ranges are the column ranges holding the OL and OT data.
	Ranges ColumnRanges `json:"ranges"`
	// Series is filled in by extraction.
	Series Series `json:"series"`
}
