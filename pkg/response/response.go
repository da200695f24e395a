package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestIDKey matches the context key set by the request id middleware.
const requestIDKey = "request_id"

// APIResponse is the uniform envelope every endpoint returns. Data carries
// the payload on success; Error carries field details on failure. Meta is
// free-form (pagination, token expiry).
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success builds a success envelope. The caller still writes it with
// c.JSON(resp.Status, resp).
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(requestIDKey),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
}

// Error builds a failure envelope; err usually holds a map of field messages
// from validation.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(requestIDKey),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}
