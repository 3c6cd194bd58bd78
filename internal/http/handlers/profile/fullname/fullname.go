// Package fullname реализует HTTP-обработчик смены полного имени пользователя.
package fullname

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

// Request описывает тело запроса на смену полного имени.
type Request struct {
	OldFullname string `json:"oldFullname" validate:"required"`
	NewFullname string `json:"newFullname" validate:"required"`
}

// FullnameUpdater описывает интерфейс сервиса смены полного имени.
type FullnameUpdater interface {
	UpdateFullname(ctx context.Context, acting *models.Profile, oldFullname, newFullname string) (*models.Profile, error)
}

// New
// @Summary Смена полного имени пользователя
// @Tags profile
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   updateRequest body Request true "Старое и новое полное имя"
// @Success 200 {object} response.SuccessResponse "Полное имя изменено"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Запрос не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /update-fullname [post]
func New(log *slog.Logger, service FullnameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.fullname.New"

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

		updated, err := service.UpdateFullname(r.Context(), profile, updateRequest.OldFullname, updateRequest.NewFullname)
		if err != nil {
			log.Error("failed to update fullname", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrEmptyFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "oldFullname and newFullname both required"))
			case errors.Is(err, userservice.ErrValueMismatch):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid old fullname"))
			case errors.Is(err, userservice.ErrSameValue):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "new fullname should not match the old one"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not update fullname"))
			}
			return
		}

		log.Info("fullname changed", slog.String("username", updated.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(updated, "fullname changed successfully"))
	}
}
