package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/store/mocks"
)

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(w io.Writer, doc *report.Document) error {
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, "%PDF-stub "+doc.Title)
	return err
}

func newTestServer(t *testing.T, renderer report.Renderer) (*gin.Engine, *mocks.MockCeodStore, tally.TestScope, func()) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockCeodStore(ctl)
	scope := tally.NewTestScope("", nil)

	gin.SetMode(gin.TestMode)
	s := NewServer(m, renderer, scope, nil)

	return s.setupRouter(), m, scope, ctl.Finish
}

func counterValue(scope tally.TestScope, name string) int64 {
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}
	return 0
}

func serve(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	return resp
}

func surveyFixture(id, city, neighborhood string, o schema.Observation, ts int64) schema.SurveyRecord {
	return schema.SurveyRecord{
		ID:           id,
		City:         city,
		Neighborhood: neighborhood,
		Observation:  o,
		Result:       score.Classify(o),
		Timestamp:    ts,
	}
}

func TestHealthz(t *testing.T) {
	router, m, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	m.EXPECT().Ping().Return(nil).Times(1)
	w := serve(router, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "OK", jResp["status"])

	m.EXPECT().Ping().Return(errors.New("connection refused")).Times(1)
	w = serve(router, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(999), decodeError(t, w).Code)
}

func TestInformation(t *testing.T) {
	router, _, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "GET", "/api/information", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Information struct {
			DefaultLanguage string       `json:"default_language"`
			Classification  []score.Band `json:"classification"`
		} `json:"information"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "pt-BR", jResp.Information.DefaultLanguage)
	assert.Equal(t, score.Bands(), jResp.Information.Classification)
}

func TestLevels(t *testing.T) {
	router, _, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "GET", "/api/levels", "", map[string]string{"Accept-Language": "en"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Levels []struct {
			Level      schema.Level `json:"level"`
			Label      string       `json:"label"`
			UpperBound *float64     `json:"upper_bound"`
			Controlled bool         `json:"controlled"`
		} `json:"levels"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.Levels, 5)
	assert.Equal(t, schema.LevelVeryLow, jResp.Levels[0].Level)
	assert.Equal(t, "Very Low", jResp.Levels[0].Label)
	assert.Equal(t, 1.1, *jResp.Levels[0].UpperBound)
	assert.True(t, jResp.Levels[1].Controlled)
	assert.False(t, jResp.Levels[2].Controlled)
	assert.Equal(t, schema.LevelVeryHigh, jResp.Levels[4].Level)
	assert.Nil(t, jResp.Levels[4].UpperBound)
}

func TestCalculate(t *testing.T) {
	router, _, scope, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "POST", "/api/calculate", `{"carious":4,"extracted":1,"filled":1,"children":2}`, nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result    schema.Result `json:"result"`
		IndexText string        `json:"index_text"`
		Label     string        `json:"label"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, 3.0, jResp.Result.Index)
	assert.Equal(t, schema.LevelModerate, jResp.Result.Level)
	assert.Equal(t, schema.MessageIntervention, jResp.Result.Message)
	assert.Equal(t, "3.0", jResp.IndexText)
	assert.Equal(t, "Moderado", jResp.Label)
	assert.Equal(t, int64(1), counterValue(scope, "classifications"))
}

func TestCalculateClampsCounts(t *testing.T) {
	router, _, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "POST", "/api/calculate", `{"carious":-3,"extracted":2,"filled":0,"children":0}`, nil)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Observation schema.Observation `json:"observation"`
		Result      schema.Result      `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, schema.Observation{Carious: 0, Extracted: 2, Filled: 0, Children: 1}, jResp.Observation)
	assert.Equal(t, 2.0, jResp.Result.Index)
	assert.Equal(t, schema.LevelLow, jResp.Result.Level)
}

func TestCalculateBadRequest(t *testing.T) {
	router, _, _, finish := newTestServer(t, stubRenderer{})
	defer finish()

	w := serve(router, "POST", "/api/calculate", `{"carious":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	resp := decodeError(t, w)
	assert.Equal(t, int64(1011), resp.Code)
	assert.Equal(t, "Não foi possível interpretar a requisição.", resp.Message)

	w = serve(router, "POST", "/api/calculate", `{"carious":`, map[string]string{"Accept-Language": "en-US,en;q=0.8"})
	assert.Equal(t, "Cannot parse request.", decodeError(t, w).Message)
}
