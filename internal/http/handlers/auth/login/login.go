// Package login реализует HTTP-обработчик входа пользователя.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/cookies"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/models"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// Request описывает тело запроса на вход: идентификатором служит
// имя пользователя или электронная почта.
type Request struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// Authenticator описывает интерфейс сервиса аутентификации.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (*models.Profile, *userservice.TokenPair, error)
}

// New
// @Summary Вход пользователя по имени или почте
// @Tags auth
// @Accept  json
// @Produce json
// @Param   loginRequest body Request true "Данные для входа (username или email, password)"
// @Success 200 {object} response.SuccessResponse "Пользователь вошел, установлены сессионные cookie"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func New(log *slog.Logger, service Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var loginRequest Request
		if err := render.DecodeJSON(r.Body, &loginRequest); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
			return
		}

		if err := validator.New().Struct(loginRequest); err != nil {
			validateErr := err.(validator.ValidationErrors)
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if loginRequest.Username == "" && loginRequest.Email == "" {
			log.Error("neither username nor email supplied")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(http.StatusBadRequest, "email or username required"))
			return
		}

		identifier := loginRequest.Username
		if identifier == "" {
			identifier = loginRequest.Email
		}

		profile, pair, err := service.Login(r.Context(), identifier, loginRequest.Password)
		if err != nil {
			log.Error("login failed", sl.Err(err))
			switch {
			case errors.Is(err, userservice.ErrEmptyFields):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(http.StatusBadRequest, "email or username required"))
			case errors.Is(err, userservice.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(http.StatusNotFound, "no user exists with this username or email"))
			case errors.Is(err, userservice.ErrInvalidCredentials):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "incorrect password"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not log in"))
			}
			return
		}

		cookies.SetSession(w, pair.AccessToken, pair.RefreshToken)

		log.Info("user logged in", slog.String("username", profile.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(map[string]any{
			"user":         profile,
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
		}, "user logged in successfully"))
	}
}
