package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apperrors "inventario/server/errors"

	"github.com/gin-gonic/gin"
)

// HTTPError интерфейс для ошибок с HTTP статусом и сообщением
// Реализуется apperrors.AppError и тестовыми ошибками
type HTTPError interface {
	error
	StatusCode() int
	UserMessage() string
	GetContext() string
	Unwrap() error
}

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     string      `json:"error"`
	Timestamp string      `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// HandleGinError логирует ошибку и отвечает JSON с кодом из HTTPError.
// Прочие ошибки отдаются как 500 без деталей.
func HandleGinError(c *gin.Context, err error, details interface{}) {
	reqID := GetRequestIDFromGin(c)

	statusCode := http.StatusInternalServerError
	message := apperrors.InternalErrorMessage

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
		message = httpErr.UserMessage()

		slog.Error("HTTP error",
			"error", httpErr.Unwrap(),
			"user_message", httpErr.UserMessage(),
			"context", httpErr.GetContext(),
			"status_code", statusCode,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	} else {
		slog.Error("HTTP error",
			"error", err,
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
		Details:   details,
	})
}
