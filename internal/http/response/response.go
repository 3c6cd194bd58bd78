// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
package response

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator"
)

// SuccessResponse описывает стандартную структуру JSON‑ответа сервера при успехе.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode" example:"200"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message" example:"user registered successfully"`
	Success    bool   `json:"success" example:"true"`
}

// ErrorResponse описывает стандартную структуру JSON‑ответа сервера при ошибке.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode" example:"400"`
	Message    string   `json:"message" example:"invalid request body"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success" example:"false"`
}

// OKWithData возвращает успешный ответ с переданными данными и сообщением.
func OKWithData(data any, msg string) SuccessResponse {
	return SuccessResponse{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    msg,
		Success:    true,
	}
}

// Error возвращает ответ с ошибкой, статус-кодом и переданным сообщением.
func Error(statusCode int, msg string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Message:    msg,
		Errors:     []string{msg},
		Success:    false,
	}
}

// ValidationError формирует ответ со статусом 400 на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}

	msg := "validation failed"
	if len(errsMsgs) > 0 {
		msg = errsMsgs[0]
	}
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    msg,
		Errors:     errsMsgs,
		Success:    false,
	}
}
