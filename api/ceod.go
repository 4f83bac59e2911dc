package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/utils"
)

// levelMessage returns the guidance message of a level in the language of loc
func levelMessage(loc *i18n.Localizer, level schema.Level) string {
	if level.Controlled() {
		return utils.Localize(loc, "message.controlled", nil)
	}
	return utils.Localize(loc, "message.intervention", nil)
}

// levels lists the classification table from the lowest to the highest level.
// The highest level has no upper bound.
func (s *Server) levels(c *gin.Context) {
	loc := localizer(c)

	bounds := map[schema.Level]float64{}
	for _, b := range score.Bands() {
		bounds[b.Level] = b.UpperBound
	}

	levels := make([]gin.H, 0, len(schema.Levels))
	for _, l := range schema.Levels {
		level := gin.H{
			"level":      l,
			"label":      report.TranslateLevel(loc, l),
			"message":    levelMessage(loc, l),
			"controlled": l.Controlled(),
		}
		if bound, ok := bounds[l]; ok {
			level["upper_bound"] = bound
		}
		levels = append(levels, level)
	}

	c.JSON(http.StatusOK, gin.H{"levels": levels})
}

// calculate classifies counts without storing them
func (s *Server) calculate(c *gin.Context) {
	var params schema.Observation

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	o := params.Normalize()
	result := score.Classify(o)
	s.metrics.Counter("classifications").Inc(1)

	loc := localizer(c)
	c.JSON(http.StatusOK, gin.H{
		"observation":       o,
		"result":            result,
		"index_text":        score.FormatIndex(result.Index),
		"label":             report.TranslateLevel(loc, result.Level),
		"localized_message": levelMessage(loc, result.Level),
	})
}
