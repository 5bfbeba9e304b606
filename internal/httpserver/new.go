package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	extractionHTTP "action-item-extractor/internal/extraction/delivery/http"
	tgDelivery "action-item-extractor/internal/extraction/delivery/telegram"
	"action-item-extractor/internal/middleware"
	"action-item-extractor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Extraction domain
	extractionHandler extractionHTTP.Handler
	middleware        middleware.Middleware

	// Optional Telegram delivery
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ExtractionHandler extractionHTTP.Handler
	Middleware        middleware.Middleware

	// TelegramHandler is nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		extractionHandler: cfg.ExtractionHandler,
		middleware:        cfg.Middleware,
		telegramHandler:   cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionHandler == nil {
		return errors.New("extraction handler is required")
	}
	return nil
}
