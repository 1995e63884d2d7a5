package models

// ColumnRange represents a span of whole columns such as "B:B" or "B:D".
type ColumnRange struct {
	// Start is the first column label.
	Start string `json:"start"`
	// End is the last column label (inclusive).
	End string `json:"end"`
}

// String renders the range in spreadsheet notation.
func (r ColumnRange) String() string {
	return r.Start + ":" + r.End
}

// ColumnRanges pairs the OL and OT ranges of a test.
type ColumnRanges struct {
	OL ColumnRange `json:"ol"`
	OT ColumnRange `json:"ot"`
}

// Get returns the range of the given channel.
func (r ColumnRanges) Get(ch Channel) ColumnRange {
	if ch == ChannelOT {
		return r.OT
	}
	return r.OL
}
