package report

import (
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/utils"
)

const Filename = "relatorio-ceod.pdf"

// Document is everything a renderer needs to lay out a ceo-d report.
type Document struct {
	Filename     string    `json:"filename"`
	Title        string    `json:"title"`
	GeneratedAt  time.Time `json:"generated_at"`
	Summary      Summary   `json:"summary"`
	SummaryTitle string    `json:"summary_title"`

	// SummaryColumns are the two columns of text lines in the summary box.
	SummaryColumns [2][]string `json:"summary_columns"`
	Columns        []Column    `json:"columns"`
	Rows           []Row       `json:"rows"`
	FooterLegend   string      `json:"footer_legend"`

	pageLabel func(page int) string
}

// PageDecoration tells a renderer what to draw around the table on a page.
type PageDecoration struct {
	PageNumber   int
	FirstPage    bool
	RedrawBanner bool
	FooterLegend string
	PageLabel    string
}

// Decoration returns the decoration of a page, counted from 1. The title
// banner is drawn with the summary on the first page and redrawn in a
// reduced form on every following page.
func (d *Document) Decoration(page int) PageDecoration {
	label := "Page " + strconv.Itoa(page)
	if d.pageLabel != nil {
		label = d.pageLabel(page)
	}

	return PageDecoration{
		PageNumber:   page,
		FirstPage:    page <= 1,
		RedrawBanner: page > 1,
		FooterLegend: d.FooterLegend,
		PageLabel:    label,
	}
}

// Aggregator turns stored survey records into a report document.
type Aggregator struct {
	localizer *i18n.Localizer
	location  *time.Location
}

// NewAggregator returns an aggregator printing labels through loc and dates
// in the tz time zone.
func NewAggregator(loc *i18n.Localizer, tz *time.Location) *Aggregator {
	if loc == nil {
		loc = utils.NewLocalizer(utils.DefaultLanguage)
	}
	if tz == nil {
		tz = time.UTC
	}

	return &Aggregator{
		localizer: loc,
		location:  tz,
	}
}

func (a *Aggregator) localize(id string, data map[string]interface{}) string {
	return utils.Localize(a.localizer, id, data)
}

// Aggregate builds the report of the records. Rows keep the input order.
// ErrNoRecords is returned when there is nothing to report.
func (a *Aggregator) Aggregate(records []schema.SurveyRecord, now time.Time) (*Document, error) {
	summary, err := Summarize(records)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewRow(r, a.localizer, a.location))
	}

	date := now.In(a.location).Format(DateLayout(a.localizer))

	return &Document{
		Filename:     Filename,
		Title:        a.localize("report.title", nil),
		GeneratedAt:  now,
		Summary:      summary,
		SummaryTitle: a.localize("report.summary_title", nil),
		SummaryColumns: [2][]string{
			{
				a.localize("report.date", map[string]interface{}{"Date": date}),
				a.localize("report.record_count", map[string]interface{}{"Count": summary.RecordCount}),
				a.localize("report.total_children", map[string]interface{}{"Count": summary.TotalChildren}),
			},
			{
				a.localize("report.average_index", map[string]interface{}{"Average": score.FormatAverage(summary.AverageIndex)}),
				a.localize("report.carious_total", map[string]interface{}{"Count": summary.TotalCarious}),
				a.localize("report.extracted_filled_total", map[string]interface{}{"Count": summary.ExtractedFilled()}),
			},
		},
		Columns: newColumns(func(key string) string {
			return a.localize("report.column."+key, nil)
		}),
		Rows:         rows,
		FooterLegend: a.localize("report.footer_legend", nil),
		pageLabel: func(page int) string {
			return a.localize("report.page", map[string]interface{}{"Page": page})
		},
	}, nil
}
