package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
)

// buildReport aggregates the stored records. It aborts the request and
// returns nil when there is nothing to report.
func (s *Server) buildReport(c *gin.Context) *report.Document {
	var filter schema.SurveyFilter

	if err := c.BindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return nil
	}

	records, err := s.store.ListSurveys(c.Request.Context(), filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorListSurveys, err)
		return nil
	}

	doc, err := report.NewAggregator(localizer(c), s.location).Aggregate(records, time.Now())
	if err != nil {
		if err == report.ErrNoRecords {
			abortWithEncoding(c, http.StatusNotFound, errorNoRecords, err)
			return nil
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorReportGenerate, err)
		return nil
	}

	return doc
}

func (s *Server) reportSummary(c *gin.Context) {
	doc := s.buildReport(c)
	if doc == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":         doc.Title,
		"generated_at":  doc.GeneratedAt.Unix(),
		"summary":       doc.Summary,
		"average_index": score.FormatAverage(doc.Summary.AverageIndex),
		"summary_title": doc.SummaryTitle,
		"summary_lines": doc.SummaryColumns,
		"columns":       doc.Columns,
		"rows":          doc.Rows,
		"footer_legend": doc.FooterLegend,
	})
}

// reportPDF renders the whole report before anything is written to the
// client. A failed rendering produces an error response and no document.
func (s *Server) reportPDF(c *gin.Context) {
	doc := s.buildReport(c)
	if doc == nil {
		return
	}

	var buf bytes.Buffer
	sw := s.metrics.Timer("report.render").Start()
	err := s.renderer.Render(&buf, doc)
	sw.Stop()
	if err != nil {
		log.WithError(err).Error("can not render report")
		sentry.CaptureException(err)
		s.metrics.Counter("report.failures").Inc(1)
		abortWithEncoding(c, http.StatusInternalServerError, errorReportGenerate, err)
		return
	}
	s.metrics.Counter("report.generated").Inc(1)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
