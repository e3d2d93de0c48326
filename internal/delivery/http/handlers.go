package http

import (
	"encoding/json"
	"github.com/gin-gonic/gin"
	"github.com/ilindan-dev/sns-notifier/internal/service"
	"github.com/rs/zerolog"
	"net/http"
)

type Handlers struct {
	service *service.NotificationService
	logger  zerolog.Logger
}

// NewHandlers creates a new instance of Handlers.
func NewHandlers(service *service.NotificationService, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger.With().Str("layer", "http_handler").Logger(),
	}
}

// RegisterRoutes sets up the routing for the notification API.
// Every method is routed so that the handler itself can answer 405.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	notifications := router.Group("", SecurityHeaders())
	{
		notifications.Any("/notifications", h.SendNotification)
		notifications.Any("/api/v1/notifications", h.SendNotification)
	}
}

// SendNotification handles the HTTP request for dispatching a notification.
func (h *Handlers) SendNotification(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.logger.Warn().Str("method", c.Request.Method).Msg("method not allowed")
		writeJSON(c, http.StatusMethodNotAllowed, ErrorResponse{Error: MsgMethodNotAllowed})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read request body")
		writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: MsgInternalServerError})
		return
	}
	h.logger.Info().RawJSON("event", eventJSON(c.Request.Method, c.Request.URL.Path, body)).Msg("received request")

	outcome, err := h.service.SendNotification(c.Request.Context(), body)
	if err != nil {
		status, resp := ResponseFor(err, h.logger)
		writeJSON(c, status, resp)
		return
	}

	status, resp := Success(outcome)
	writeJSON(c, status, resp)
}

// SecurityHeaders sets the headers every notification response must carry.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(HSTSHeader, HSTSValue)
		c.Header("Content-Type", ContentTypeJSON)
		c.Next()
	}
}

// writeJSON renders v with a bare "application/json" content type.
func writeJSON(c *gin.Context, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, ContentTypeJSON, b)
}

// eventJSON renders the inbound request for the access log without trusting the body to be JSON.
func eventJSON(method, path string, body []byte) []byte {
	b, err := json.Marshal(struct {
		HTTPMethod string `json:"httpMethod"`
		Path       string `json:"path"`
		Body       string `json:"body"`
	}{method, path, string(body)})
	if err != nil {
		return []byte("{}")
	}
	return b
}
