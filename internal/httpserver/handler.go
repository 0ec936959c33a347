package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "household-calendar/internal/event/delivery/http"
	chatHTTP "household-calendar/internal/extraction/delivery/http"
	"household-calendar/internal/middleware"
	"household-calendar/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.chatPerMin)

	srv.setupChatDomain(ctx, api, mw)

	if srv.eventUC != nil {
		srv.setupEventDomain(ctx, api, mw)
	} else {
		srv.l.Infof(ctx, "Event store not configured, skipping /api/v1/events routes")
	}

	return nil
}

// setupChatDomain registers POST /api/v1/chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.extractionUC)
	chatHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Chat domain registered")
}

// setupEventDomain registers the /api/v1/events routes.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Event domain registered")
}
