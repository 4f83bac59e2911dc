package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/store"
)

type surveyResponse struct {
	Survey schema.SurveyRecord `json:"survey"`
}

func TestCreateSurvey(t *testing.T) {
	router, m, scope, finish := newTestServer(t, stubRenderer{})
	defer finish()

	m.EXPECT().CreateSurvey(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r schema.SurveyRecord) (*schema.SurveyRecord, error) {
			assert.Equal(t, "Recife", r.City)
			assert.Equal(t, "Boa Vista", r.Neighborhood)
			assert.Equal(t, schema.Observation{Carious: 0, Extracted: 3, Filled: 2, Children: 1}, r.Observation)
			r.ID = "survey-1"
			r.Timestamp = 1000
			return &r, nil
		}).Times(1)

	w := serve(router, "POST", "/api/surveys",
		`{"city":" Recife ","neighborhood":"Boa Vista","carious":-1,"extracted":3,"filled":2,"children":0}`, nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp surveyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "survey-1", jResp.Survey.ID)
	assert.Equal(t, 5.0, jResp.Survey.Result.Index)
	assert.Equal(t, schema.LevelHigh, jResp.Survey.Result.Level)
	assert.Equal(t, int64(1), counterValue(scope, "surveys.created"))
}

func TestCreateSurveyRequiresLocation(t *testing.T) {
	router, _, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "POST", "/api/surveys", `{"city":"Recife","neighborhood":"  ","carious":1,"children":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1012), decodeError(t, w).Code)
}

func TestCreateSurveyStoreFailure(t *testing.T) {
	router, m, scope, finish := newTestServer(t, stubRenderer{})
	defer finish()

	m.EXPECT().CreateSurvey(gomock.Any(), gomock.Any()).Return(nil, errors.New("write failed")).Times(1)

	w := serve(router, "POST", "/api/surveys", `{"city":"Recife","neighborhood":"Derby","carious":1,"children":1}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(1201), decodeError(t, w).Code)
	assert.Equal(t, int64(0), counterValue(scope, "surveys.created"))
}

func TestListSurveys(t *testing.T) {
	router, m, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	records := []schema.SurveyRecord{
		surveyFixture("b", "Recife", "Derby", schema.Observation{Carious: 6, Children: 1}, 200),
		surveyFixture("a", "Recife", "Graças", schema.Observation{Carious: 1, Children: 1}, 100),
	}
	m.EXPECT().ListSurveys(gomock.Any(), schema.SurveyFilter{City: "reci"}).Return(records, nil).Times(1)

	w := serve(router, "GET", "/api/surveys?city=reci", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Surveys []schema.SurveyRecord `json:"surveys"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, records, jResp.Surveys)

	m.EXPECT().ListSurveys(gomock.Any(), schema.SurveyFilter{}).Return(nil, errors.New("timeout")).Times(1)
	w = serve(router, "GET", "/api/surveys", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(1204), decodeError(t, w).Code)
}

func TestGetSurvey(t *testing.T) {
	router, m, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	record := surveyFixture("a", "Olinda", "Carmo", schema.Observation{Carious: 2, Children: 1}, 100)
	m.EXPECT().GetSurvey(gomock.Any(), "a").Return(&record, nil).Times(1)
	m.EXPECT().GetSurvey(gomock.Any(), "missing").Return(nil, store.ErrSurveyNotFound).Times(1)

	w := serve(router, "GET", "/api/surveys/a", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp surveyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, record, jResp.Survey)

	w = serve(router, "GET", "/api/surveys/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, int64(1200), decodeError(t, w).Code)
}

func TestUpdateSurvey(t *testing.T) {
	router, m, scope, finish := newTestServer(t, stubRenderer{})
	defer finish()

	o := schema.Observation{Carious: 9, Children: 1}
	updated := surveyFixture("a", "Olinda", "Carmo", o, 100)
	children := 1
	carious := 9
	m.EXPECT().UpdateSurvey(gomock.Any(), "a", schema.SurveyPatch{Carious: &carious, Children: &children}).Return(&updated, nil).Times(1)

	w := serve(router, "PATCH", "/api/surveys/a", `{"carious":9,"children":1}`, nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp surveyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, score.Classify(o), jResp.Survey.Result)
	assert.Equal(t, int64(1), counterValue(scope, "surveys.updated"))
}

func TestUpdateSurveyRejected(t *testing.T) {
	router, m, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "PATCH", "/api/surveys/a", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1010), decodeError(t, w).Code)

	w = serve(router, "PATCH", "/api/surveys/a", `{"city":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1012), decodeError(t, w).Code)

	m.EXPECT().UpdateSurvey(gomock.Any(), "missing", gomock.Any()).Return(nil, store.ErrSurveyNotFound).Times(1)
	w = serve(router, "PATCH", "/api/surveys/missing", `{"filled":1}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, int64(1200), decodeError(t, w).Code)

	m.EXPECT().UpdateSurvey(gomock.Any(), "a", gomock.Any()).Return(nil, errors.New("write conflict")).Times(1)
	w = serve(router, "PATCH", "/api/surveys/a", `{"filled":1}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(1202), decodeError(t, w).Code)
}

func TestDeleteSurvey(t *testing.T) {
	router, m, scope, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "DELETE", "/api/surveys/a", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1205), decodeError(t, w).Code)

	w = serve(router, "DELETE", "/api/surveys/a?confirm=no", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	m.EXPECT().DeleteSurvey(gomock.Any(), "a").Return(nil).Times(1)
	w = serve(router, "DELETE", "/api/surveys/a?confirm=true", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.Equal(t, int64(1), counterValue(scope, "surveys.deleted"))

	m.EXPECT().DeleteSurvey(gomock.Any(), "a").Return(store.ErrSurveyNotFound).Times(1)
	w = serve(router, "DELETE", "/api/surveys/a?confirm=true", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	m.EXPECT().DeleteSurvey(gomock.Any(), "b").Return(errors.New("timeout")).Times(1)
	w = serve(router, "DELETE", "/api/surveys/b?confirm=1", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(1203), decodeError(t, w).Code)
}

func TestAdminKeyProtectsWrites(t *testing.T) {
	viper.Set("server.apikey.admin", "secret")
	defer viper.Set("server.apikey.admin", "")

	router, m, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "DELETE", "/api/surveys/a?confirm=true", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	w = serve(router, "DELETE", "/api/surveys/a?confirm=true", "", map[string]string{"Api-Token": "wrong"})
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	m.EXPECT().DeleteSurvey(gomock.Any(), "a").Return(nil).Times(1)
	w = serve(router, "DELETE", "/api/surveys/a?confirm=true", "", map[string]string{"Api-Token": "secret"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	m.EXPECT().GetSurvey(gomock.Any(), "a").Return(nil, store.ErrSurveyNotFound).Times(1)
	w = serve(router, "GET", "/api/surveys/a", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "reads must not require the admin key")
}
