package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ilindan-dev/sns-notifier/internal/config"
	"github.com/rs/zerolog"
	"net/http"
)

// Server is a wrapper for the HTTP server.
type Server struct {
	*http.Server
	logger zerolog.Logger
}

// NewServer creates and configures a new Gin server.
func NewServer(cfg *config.Config, handlers *Handlers, logger *zerolog.Logger) *Server {
	log := logger.With().Str("layer", "http_server").Logger()
	log.Info().Msg("initializing http server")

	log.Info().Str("mode", cfg.HTTP.GinMode).Msg("setting gin mode")
	gin.SetMode(cfg.HTTP.GinMode)

	server := &http.Server{
		Addr:    cfg.HTTP.Port,
		Handler: NewRouter(handlers, log),
	}

	return &Server{server, log}
}

// NewRouter builds the gin engine with middleware, API routes and the health check.
func NewRouter(handlers *Handlers, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	log.Info().Msg("initializing middleware: recovery")
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Msg("Unexpected error")
		c.Header(HSTSHeader, HSTSValue)
		writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: MsgInternalServerError})
		c.Abort()
	}))

	log.Info().Msg("registering api routes")
	handlers.RegisterRoutes(router)

	log.Info().Msg("registering health check endpoint")
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
