package api

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/store"
	"github.com/bitmark-inc/ceod-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "city and neighborhood are required",

		1200: store.ErrSurveyNotFound.Error(),
		1201: "can not create survey record",
		1202: "can not update survey record",
		1203: "can not delete survey record",
		1204: "can not list survey records",
		1205: "deletion must be confirmed",

		1300: report.ErrNoRecords.Error(),
		1301: "can not generate report",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorLocationRequired   = errorJSON(1012)

	errorSurveyNotFound       = errorJSON(1200)
	errorCreateSurvey         = errorJSON(1201)
	errorUpdateSurvey         = errorJSON(1202)
	errorDeleteSurvey         = errorJSON(1203)
	errorListSurveys          = errorJSON(1204)
	errorDeletionNotConfirmed = errorJSON(1205)

	errorNoRecords      = errorJSON(1300)
	errorReportGenerate = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// localized returns a copy of the error with the message in the language of loc.
// Codes without a translation keep their default message.
func (e ErrorResponse) localized(loc *i18n.Localizer) ErrorResponse {
	id := fmt.Sprintf("errors.%d", e.Code)
	if msg := utils.Localize(loc, id, nil); msg != id {
		e.Message = msg
	}
	return e
}
