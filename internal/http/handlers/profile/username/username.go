// Package username реализует HTTP-обработчик смены имени пользователя.
package username

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
	"github.com/magabrotheeeer/user-account-service/internal/models"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// Request описывает тело запроса на смену имени пользователя.
type Request struct {
	OldUsername string `json:"oldUsername" validate:"required"`
	NewUsername string `json:"newUsername" validate:"required"`
}

// UsernameUpdater описывает интерфейс сервиса смены имени пользователя.
type UsernameUpdater interface {
	UpdateUsername(ctx context.Context, acting *models.Profile, oldUsername, newUsername string) (*models.Profile, error)
}

// New
// @Summary Смена имени пользователя
// @Tags profile
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   updateRequest body Request true "Старое и новое имя пользователя"
// @Success 200 {object} response.SuccessResponse "Имя пользователя изменено"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Запрос не аутентифицирован"
// @Failure 409 {object} response.ErrorResponse "Имя пользователя уже занято"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /update-username [post]
func New(log *slog.Logger, service UsernameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.username.New"

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

		updated, err := service.UpdateUsername(r.Context(), profile, updateRequest.OldUsername, updateRequest.NewUsername)
		if err != nil {
			log.Error("failed to update username", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrEmptyFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "oldUsername and newUsername both required"))
			case errors.Is(err, userservice.ErrValueMismatch):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "oldUsername is not correct"))
			case errors.Is(err, userservice.ErrSameValue):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "new username should not match the old one"))
			case errors.Is(err, userservice.ErrUserExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(http.StatusConflict, "username is already taken"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not update username"))
			}
			return
		}

		log.Info("username changed", slog.String("username", updated.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(updated, "username changed successfully"))
	}
}
