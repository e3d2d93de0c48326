package http

// SendNotificationResponse is returned when the backend accepted the notification.
type SendNotificationResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// ErrorResponse defines a standard structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
