package report

import (
	"errors"

	"github.com/bitmark-inc/ceod-api/schema"
)

var (
	ErrNoRecords = errors.New("no survey records to report")
)

// Summary holds the figures shown in the overall summary box of a report.
type Summary struct {
	AverageIndex   float64 `json:"average_index"`
	TotalChildren  int     `json:"total_children"`
	TotalCarious   int     `json:"total_carious"`
	TotalExtracted int     `json:"total_extracted"`
	TotalFilled    int     `json:"total_filled"`
	RecordCount    int     `json:"record_count"`
}

// ExtractedFilled is the combined count printed next to the decayed total.
func (s Summary) ExtractedFilled() int {
	return s.TotalExtracted + s.TotalFilled
}

// Summarize reduces the records into report totals. The average is the plain
// mean of the stored record indices, so it is undefined for an empty input
// and ErrNoRecords is returned instead.
func Summarize(records []schema.SurveyRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrNoRecords
	}

	var s Summary
	var indexSum float64
	for _, r := range records {
		indexSum += r.Result.Index
		s.TotalChildren += r.Children
		s.TotalCarious += r.Carious
		s.TotalExtracted += r.Extracted
		s.TotalFilled += r.Filled
	}
	s.RecordCount = len(records)
	s.AverageIndex = indexSum / float64(s.RecordCount)

	return s, nil
}
