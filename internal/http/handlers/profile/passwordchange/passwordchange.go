// Package passwordchange реализует HTTP-обработчик смены пароля.
package passwordchange

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// Request описывает тело запроса на смену пароля.
type Request struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// PasswordChanger описывает интерфейс сервиса смены пароля.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userUID, oldPassword, newPassword string) error
}

// New
// @Summary Смена пароля пользователя
// @Tags profile
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   updateRequest body Request true "Старый и новый пароль"
// @Success 200 {object} response.SuccessResponse "Пароль изменен"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Старый пароль неверен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /update-password [post]
func New(log *slog.Logger, service PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.passwordchange.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		profile, ok := middlewarectx.ProfileFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized request"))
			return
		}

		var updateRequest Request
		if err := render.DecodeJSON(r.Body, &updateRequest); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
			return
		}

		if err := validator.New().Struct(updateRequest); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err := service.ChangePassword(r.Context(), profile.UID, updateRequest.OldPassword, updateRequest.NewPassword)
		if err != nil {
			log.Error("failed to change password", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrEmptyFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "both old password and new password required"))
			case errors.Is(err, userservice.ErrSameValue):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "new password should not match the old password"))
			case errors.Is(err, userservice.ErrInvalidCredentials):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid old password"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not change password"))
			}
			return
		}

		log.Info("password changed", slog.String("username", profile.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(map[string]any{}, "password changed successfully"))
	}
}
