package errors

import (
	"errors"
	"fmt"
	"net/http"

	"inventario/internal/domain/inventory"
)

// ErrRunInProgress прогон уже выполняется
var ErrRunInProgress = errors.New("run already in progress")

// InternalErrorMessage общее сообщение для ответов 500
const InternalErrorMessage = "Error interno del servidor"

// AppError представляет ошибку приложения с HTTP статусом и контекстом
type AppError struct {
	Code    int    `json:"status_code"` // HTTP статус код
	Message string `json:"message"`     // Сообщение для пользователя
	Err     error  `json:"-"`           // Внутренняя ошибка для логов, не сериализуется
	Context string `json:"-"`           // Дополнительный контекст (функция, параметры)
}

// Error реализует интерфейс error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для errors.Is и errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode возвращает HTTP статус код ошибки
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage возвращает сообщение для пользователя
func (e *AppError) UserMessage() string {
	return e.Message
}

// GetContext возвращает контекст ошибки
func (e *AppError) GetContext() string {
	return e.Context
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewNotFoundError создает ошибку 404 Not Found
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewUnprocessableError создает ошибку 422: входные файлы нужно исправить
func NewUnprocessableError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Err:     err,
	}
}

// NewConflictError создает ошибку 409 Conflict
func NewConflictError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
		Err:     err,
	}
}

// NewTooManyRequestsError создает ошибку 429 Too Many Requests
func NewTooManyRequestsError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Message: message,
		Err:     err,
	}
}

// NewInternalError создает ошибку 500 Internal Server Error
// Для пользователя возвращается общее сообщение, детали только в логах
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: InternalErrorMessage,
		Err:     errors.Join(errors.New(message), err),
	}
}

// FromRunError переводит ошибку прогона в HTTP ошибку.
// Ошибки входных данных показываются оператору целиком.
func FromRunError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrRunInProgress):
		return NewConflictError("Proceso en ejecución, intente más tarde", err)
	case inventory.IsInputError(err):
		return NewUnprocessableError(err.Error(), err)
	case errors.Is(err, inventory.ErrOutputWrite):
		return NewInternalError("failed to write output", err).WithContext("output")
	default:
		return NewInternalError("run failed", err)
	}
}
