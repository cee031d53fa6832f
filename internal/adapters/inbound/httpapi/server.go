package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/application"
)

const apiVersion = "1.0.0"

// Server exposes the analysis pipeline over HTTP. Requests are handled
// synchronously; concurrency comes from the HTTP server, the service
// itself holds no shared mutable state.
type Server struct {
	svc     *application.AnalyzeService
	tempDir string
	logger  *zap.Logger
	engine  *gin.Engine
}

func NewServer(svc *application.AnalyzeService, tempDir string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger), cors())

	s := &Server{
		svc:     svc,
		tempDir: tempDir,
		logger:  logger,
		engine:  engine,
	}

	engine.GET("/", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.POST("/analyze-code", s.handleAnalyzeUpload)
	engine.POST("/analyze", s.handleAnalyzeSource)

	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info("lintgrade API listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.engine }
