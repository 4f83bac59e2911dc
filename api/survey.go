package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/store"
)

func (s *Server) createSurvey(c *gin.Context) {
	var params struct {
		City         string `json:"city"`
		Neighborhood string `json:"neighborhood"`
		schema.Observation
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	record := schema.SurveyRecord{
		City:         params.City,
		Neighborhood: params.Neighborhood,
		Observation:  params.Observation.Normalize(),
	}
	if err := record.ValidateLocation(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired, err)
		return
	}
	record.Result = score.Classify(record.Observation)
	s.metrics.Counter("classifications").Inc(1)

	created, err := s.store.CreateSurvey(c.Request.Context(), record)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCreateSurvey, err)
		return
	}
	s.metrics.Counter("surveys.created").Inc(1)

	c.JSON(http.StatusOK, gin.H{"survey": created})
}

func (s *Server) listSurveys(c *gin.Context) {
	var filter schema.SurveyFilter

	if err := c.BindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	records, err := s.store.ListSurveys(c.Request.Context(), filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorListSurveys, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": records})
}

func (s *Server) getSurvey(c *gin.Context) {
	record, err := s.store.GetSurvey(c.Request.Context(), c.Param("surveyID"))
	if err != nil {
		if err == store.ErrSurveyNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"survey": record})
}

// updateSurvey amends a record. The stored classification follows the amended counts.
func (s *Server) updateSurvey(c *gin.Context) {
	var patch schema.SurveyPatch

	if err := c.BindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if patch.Empty() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, store.ErrEmptyPatch)
		return
	}

	if err := patch.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired, err)
		return
	}

	record, err := s.store.UpdateSurvey(c.Request.Context(), c.Param("surveyID"), patch)
	if err != nil {
		switch err {
		case store.ErrSurveyNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound, err)
		case store.ErrEmptyPatch:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		case schema.ErrEmptyCity, schema.ErrEmptyNeighborhood:
			abortWithEncoding(c, http.StatusBadRequest, errorLocationRequired, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorUpdateSurvey, err)
		}
		return
	}
	s.metrics.Counter("surveys.updated").Inc(1)

	c.JSON(http.StatusOK, gin.H{"survey": record})
}

// deleteSurvey removes a record permanently once the caller confirms it
func (s *Server) deleteSurvey(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if !confirmed {
		abortWithEncoding(c, http.StatusBadRequest, errorDeletionNotConfirmed)
		return
	}

	if err := s.store.DeleteSurvey(c.Request.Context(), c.Param("surveyID")); err != nil {
		if err == store.ErrSurveyNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorSurveyNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorDeleteSurvey, err)
		return
	}
	s.metrics.Counter("surveys.deleted").Inc(1)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
