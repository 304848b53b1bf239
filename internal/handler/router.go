package handler

import (
	"io/fs"
	"net/http"
	"time"

	"chatsearch/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// RouterOptions configures NewRouter
type RouterOptions struct {
	AllowedOrigins string
	DefaultLimit   int
	MaxLimit       int
	AccessLog      bool
	Web            fs.FS // frontend assets; nil disables static serving
	Build          BuildInfo
	Logger         zerolog.Logger
}

// NewRouter wires every HTTP route onto a new gin engine
func NewRouter(searchService *service.SearchService, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.AccessLog {
		router.Use(requestLogger(opts.Logger))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{opts.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	searchHandler := NewSearchHandler(searchService, opts.DefaultLimit, opts.MaxLimit, opts.Logger)
	parseHandler := NewParseHandler(searchService)
	statsHandler := NewStatsHandler(searchService)

	router.GET("/health", searchHandler.Health)
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, opts.Build)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, prefix := range []string{"/api", "/api/v1"} {
		api := router.Group(prefix)
		{
			api.POST("/search", searchHandler.Search)
			api.POST("/parse", parseHandler.Parse)
			api.GET("/stats", statsHandler.Stats)
		}
	}

	setupStaticFiles(router, opts.Web)
	return router
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		if status >= http.StatusInternalServerError {
			evt = log.Error()
		} else if status >= http.StatusBadRequest {
			evt = log.Warn()
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
