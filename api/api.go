package api

import (
	"database/sql"
	"factorrank/internal/logger"
	"factorrank/internal/metrics"
	"factorrank/internal/service"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                 *sql.DB
	ScoringService     service.ScoringService
	CorrelationService service.CorrelationService
	ExportService      service.ExportService
}

var validate = validator.New()

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to factorrank"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/factorThemes", m.factorThemes)
	router.POST("/scoreStocks", m.scoreStocks)
	router.POST("/exportScores", m.exportScores)
	router.POST("/correlationMatrix", m.correlationMatrix)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Errorw(err.Error(), "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// parsePortfolioID treats a missing or empty id as "all tickers"
func parsePortfolioID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolioID '%s': %w", *s, err)
	}
	return &id, nil
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now().UTC()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}

	log := logger.FromContext(c.Request.Context()).With(
		"requestID", uuid.NewString(),
		"method", c.Request.Method,
		"route", route,
	)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

	c.Next()

	status := c.Writer.Status()
	elapsed := time.Since(start)
	metrics.HttpRequestDuration.
		WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
	log.Infow("request complete",
		"status", status,
		"durationMs", elapsed.Milliseconds(),
		"ip", c.ClientIP(),
	)
}
