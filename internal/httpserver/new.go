package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"household-calendar/internal/event"
	"household-calendar/internal/extraction"
	"household-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	chatPerMin  int

	// Domains
	remoteExtraction bool
	extractionUC extraction.UseCase
	eventUC      event.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	ChatPerMin  int

	// Chat domain
	ExtractionUseCase extraction.UseCase
	RemoteExtraction  bool

	// Event store domain (optional)
	EventUseCase event.UseCase
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		chatPerMin:   cfg.ChatPerMin,
		extractionUC: cfg.ExtractionUseCase,
		eventUC:      cfg.EventUseCase,

		remoteExtraction: cfg.RemoteExtraction,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.extractionUC == nil {
		return errors.New("extraction use case is required")
	}
	return nil
}
