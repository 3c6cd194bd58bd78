// Package avatar реализует HTTP-обработчик смены аватара пользователя.
package avatar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/models"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// maxUploadSize ограничивает размер multipart-формы.
const maxUploadSize = 10 << 20

// AvatarChanger описывает интерфейс сервиса смены аватара.
type AvatarChanger interface {
	ChangeAvatar(ctx context.Context, acting *models.Profile, blob *userservice.Blob) (*models.Profile, error)
}

// New
// @Summary Смена аватара пользователя
// @Tags profile
// @Accept  mpfd
// @Produce json
// @Security BearerAuth
// @Param   avatar formData file true "Новый аватар"
// @Success 200 {object} response.SuccessResponse "Аватар изменен"
// @Failure 400 {object} response.ErrorResponse "Файл не передан"
// @Failure 401 {object} response.ErrorResponse "Запрос не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Ошибка медиахранилища"
// @Router /update-avatar [post]
func New(log *slog.Logger, service AvatarChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.avatar.New"

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

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "no avatar file provided"))
			return
		}

		updated, err := service.ChangeAvatar(r.Context(), profile, formBlob(r, "avatar"))
		if err != nil {
			log.Error("failed to change avatar", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrFileRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "no avatar file provided"))
			case errors.Is(err, userservice.ErrUploadFailed):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "cannot upload avatar to media store"))
			case errors.Is(err, userservice.ErrMediaDelete):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "cannot delete file from media store"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not change avatar"))
			}
			return
		}

		log.Info("avatar changed", slog.String("username", updated.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(updated, "avatar changed successfully"))
	}
}

func formBlob(r *http.Request, field string) *userservice.Blob {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	return &userservice.Blob{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
}
