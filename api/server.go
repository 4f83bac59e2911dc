package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ceod-api/logmodule"
	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/score"
	"github.com/bitmark-inc/ceod-api/store"
	"github.com/bitmark-inc/ceod-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CeodStore

	// Report output
	renderer report.Renderer
	location *time.Location

	// Metrics
	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(ceodStore store.CeodStore, renderer report.Renderer, scope tally.Scope, tz *time.Location) *Server {
	if scope == nil {
		scope = tally.NoopScope
	}
	if tz == nil {
		tz = time.UTC
	}

	return &Server{
		store:    ceodStore,
		renderer: renderer,
		location: tz,
		metrics:  scope,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "Api-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.localizerMiddleware(viper.GetString("i18n.default_language")))
	{
		apiRoute.GET("/information", s.information)
		apiRoute.GET("/levels", s.levels)
		apiRoute.POST("/calculate", s.calculate)
	}

	surveyRoute := apiRoute.Group("/surveys")
	{
		surveyRoute.GET("", s.listSurveys)
		surveyRoute.GET("/:surveyID", s.getSurvey)
	}

	// modifying routes are restricted once an admin key is configured
	if key := viper.GetString("server.apikey.admin"); key != "" {
		surveyRoute.Use(s.apikeyAuthentication(key))
	}
	{
		surveyRoute.POST("", s.createSurvey)
		surveyRoute.PATCH("/:surveyID", s.updateSurvey)
		surveyRoute.DELETE("/:surveyID", s.deleteSurvey)
	}

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.GET("/summary", s.reportSummary)
		reportRoute.GET("/pdf", s.reportPDF)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// localizerMiddleware attaches a "localizer" key in gin's context, preferring
// the languages of the Accept-Language header over the default language.
func (s *Server) localizerMiddleware(defaultLanguage string) gin.HandlerFunc {
	if defaultLanguage == "" {
		defaultLanguage = utils.DefaultLanguage
	}

	return func(c *gin.Context) {
		c.Set("localizer", utils.NewLocalizer(c.GetHeader("Accept-Language"), defaultLanguage))
		c.Next()
	}
}

func localizer(c *gin.Context) *i18n.Localizer {
	if l, ok := c.Get("localizer"); ok {
		if loc, ok := l.(*i18n.Localizer); ok {
			return loc
		}
	}
	return utils.NewLocalizer(utils.DefaultLanguage)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	defaultLanguage := viper.GetString("i18n.default_language")
	if defaultLanguage == "" {
		defaultLanguage = utils.DefaultLanguage
	}

	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"default_language": defaultLanguage,
			"timezone":         s.location.String(),
			"classification":   score.Bands(),
			"system_version":   "ceo-d 1.0",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj = obj.localized(localizer(c))

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
