// Package register реализует HTTP-обработчик регистрации нового пользователя.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/models"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// maxUploadSize ограничивает суммарный размер multipart-формы.
const maxUploadSize = 10 << 20

// Registrator описывает интерфейс сервиса регистрации.
type Registrator interface {
	Register(ctx context.Context, fullName, username, email, password string, avatar, cover *userservice.Blob) (*models.Profile, error)
}

// New
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept  mpfd
// @Produce json
// @Param   fullName   formData string true  "Полное имя"
// @Param   username   formData string true  "Имя пользователя"
// @Param   email      formData string true  "Электронная почта"
// @Param   password   formData string true  "Пароль"
// @Param   avatar     formData file   true  "Аватар"
// @Param   coverImage formData file   false "Обложка профиля"
// @Success 200 {object} response.SuccessResponse "Пользователь успешно создан"
// @Failure 400 {object} response.ErrorResponse "Нет файла аватара"
// @Failure 407 {object} response.ErrorResponse "Не заполнены обязательные поля"
// @Failure 409 {object} response.ErrorResponse "Имя пользователя или почта уже заняты"
// @Failure 500 {object} response.ErrorResponse "Ошибка загрузки файла или внутренняя ошибка"
// @Router /register [post]
func New(log *slog.Logger, service Registrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "failed to parse multipart form"))
			return
		}

		avatar := formBlob(r, "avatar")
		cover := formBlob(r, "coverImage")

		profile, err := service.Register(r.Context(),
			r.FormValue("fullName"),
			r.FormValue("username"),
			r.FormValue("email"),
			r.FormValue("password"),
			avatar, cover)
		if err != nil {
			log.Error("failed to register new user", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrEmptyFields):
				render.Status(r, http.StatusProxyAuthRequired)
				render.JSON(w, r, response.Error(http.StatusProxyAuthRequired, "all fields are necessary"))
			case errors.Is(err, userservice.ErrAvatarRequired):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "avatar image is required"))
			case errors.Is(err, userservice.ErrUserExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(http.StatusConflict, "user with username or email already exists"))
			case errors.Is(err, userservice.ErrUploadFailed):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "server error couldn't upload file"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "failed to register new user"))
			}
			return
		}

		log.Info("created new user", slog.String("username", profile.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(profile, "user registered successfully"))
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
