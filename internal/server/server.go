// Package server exposes the review workflow over HTTP: a single form page,
// JSON endpoints for generate/translate, and the document download.
package server

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/valpere/sareview/internal/review"
	"github.com/valpere/sareview/internal/store"
	"github.com/valpere/sareview/internal/validator"
)

//go:embed index.html
var indexPage []byte

// Config carries the server wiring.
type Config struct {
	Addr      string
	APIKey    string
	Model     string
	MaxTokens int
}

// Server holds the handlers' collaborators.
type Server struct {
	cfg      Config
	svc      *review.Service
	store    *store.Store
	val      *validator.Validator
	sessions *sessionRegistry
	log      *zap.Logger
}

// New builds a server. db may be nil to run without history persistence;
// val may be nil to skip post-translation language checks.
func New(cfg Config, svc *review.Service, db *store.Store, val *validator.Validator, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		svc:      svc,
		store:    db,
		val:      val,
		sessions: newSessionRegistry(),
		log:      log,
	}
}

// Router assembles the gin engine.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})

	api := router.Group("/api")
	{
		api.POST("/review", s.handleGenerate)
		api.POST("/translate", s.handleTranslate)
		api.POST("/document", s.handleDocument)
		api.GET("/history", s.handleHistory)
	}

	return router
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	s.log.Info("server starting", zap.String("addr", s.cfg.Addr))
	return s.Router().Run(s.cfg.Addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
