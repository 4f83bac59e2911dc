package score

import (
	"strconv"

	"github.com/bitmark-inc/ceod-api/schema"
)

// Band is one row of the ceo-d classification table. An index belongs to the
// first band whose upper bound it does not exceed.
type Band struct {
	UpperBound float64      `json:"upper_bound"`
	Level      schema.Level `json:"level"`
}

// ceodBands is ordered by ascending upper bound. Anything above the last
// bound is very-high.
var ceodBands = []Band{
	{1.1, schema.LevelVeryLow},
	{2.6, schema.LevelLow},
	{4.4, schema.LevelModerate},
	{6.5, schema.LevelHigh},
}

// Bands returns a copy of the bounded part of the classification table.
func Bands() []Band {
	bands := make([]Band, len(ceodBands))
	copy(bands, ceodBands)
	return bands
}

// CeodIndex returns decayed, extracted and filled teeth per child examined.
// The observation must have at least one child.
func CeodIndex(o schema.Observation) float64 {
	return float64(o.Teeth()) / float64(o.Children)
}

// ClassifyIndex maps an index to its severity band. Upper bounds are inclusive.
func ClassifyIndex(index float64) schema.Level {
	for _, b := range ceodBands {
		if index <= b.UpperBound {
			return b.Level
		}
	}
	return schema.LevelVeryHigh
}

// LevelMessage returns the guidance attached to a band
func LevelMessage(l schema.Level) string {
	if l.Controlled() {
		return schema.MessageControlled
	}
	return schema.MessageIntervention
}

// Classify computes the ceo-d index of an observation and classifies it.
// Counts are expected to be normalized already.
func Classify(o schema.Observation) schema.Result {
	index := CeodIndex(o)
	level := ClassifyIndex(index)

	return schema.Result{
		Index:   index,
		Level:   level,
		Message: LevelMessage(level),
	}
}

// FormatIndex renders an index the way it is displayed next to a record.
func FormatIndex(index float64) string {
	return strconv.FormatFloat(index, 'f', 1, 64)
}

// FormatAverage renders an averaged index, which carries one more decimal
// than a single record.
func FormatAverage(average float64) string {
	return strconv.FormatFloat(average, 'f', 2, 64)
}
