package report

import (
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/utils"
)

// Row is the projection of one survey record into the report table.
type Row struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Index        string `json:"index"`
	Level        string `json:"level"`
	Carious      int    `json:"carious"`
	Extracted    int    `json:"extracted"`
	Filled       int    `json:"filled"`
	Children     int    `json:"children"`
	Date         string `json:"date"`
}

// Cells returns the row values in column order.
func (r Row) Cells() []string {
	return []string{
		r.City,
		r.Neighborhood,
		r.Index,
		r.Level,
		strconv.Itoa(r.Carious),
		strconv.Itoa(r.Extracted),
		strconv.Itoa(r.Filled),
		strconv.Itoa(r.Children),
		r.Date,
	}
}

// TranslateLevel returns the display label of a level. Values outside the
// enumeration are returned unchanged.
func TranslateLevel(loc *i18n.Localizer, level schema.Level) string {
	if !level.Valid() {
		return string(level)
	}
	return utils.Localize(loc, "level."+string(level), nil)
}

// FormatDate renders a record timestamp (unix seconds) as a calendar date.
func FormatDate(ts int64, layout string, tz *time.Location) string {
	if tz == nil {
		tz = time.UTC
	}
	return time.Unix(ts, 0).In(tz).Format(layout)
}

// DateLayout is the localized layout used for record and report dates.
func DateLayout(loc *i18n.Localizer) string {
	return utils.Localize(loc, "report.date_layout", nil)
}

// NewRow projects a record into a report row.
func NewRow(r schema.SurveyRecord, loc *i18n.Localizer, tz *time.Location) Row {
	return Row{
		City:         r.City,
		Neighborhood: r.Neighborhood,
		Index:        score.FormatIndex(r.Result.Index),
		Level:        TranslateLevel(loc, r.Result.Level),
		Carious:      r.Carious,
		Extracted:    r.Extracted,
		Filled:       r.Filled,
		Children:     r.Children,
		Date:         FormatDate(r.Timestamp, DateLayout(loc), tz),
	}
}
