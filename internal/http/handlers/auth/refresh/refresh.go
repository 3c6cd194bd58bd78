// Package refresh реализует HTTP-обработчик ротации пары токенов.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/cookies"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
)

// Request описывает тело запроса. Токен может прийти также в cookie,
// тогда тело может быть пустым.
type Request struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenRotator описывает интерфейс сервиса ротации токенов.
type TokenRotator interface {
	Refresh(ctx context.Context, incomingToken string) (*userservice.TokenPair, error)
}

// New
// @Summary Обмен refresh-токена на новую пару токенов
// @Tags auth
// @Accept  json
// @Produce json
// @Param   refreshRequest body Request false "Refresh-токен (может быть передан в cookie)"
// @Success 200 {object} response.SuccessResponse "Выпущена новая пара токенов"
// @Failure 401 {object} response.ErrorResponse "Токен отсутствует, просрочен или невалиден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /refresh-token [post]
func New(log *slog.Logger, service TokenRotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.refresh.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		// Тело опционально: ошибки декодирования не фатальны, токен может быть в cookie.
		var refreshRequest Request
		_ = render.DecodeJSON(r.Body, &refreshRequest)

		incomingToken := refreshRequest.RefreshToken
		if incomingToken == "" {
			if c, err := r.Cookie(cookies.RefreshToken); err == nil {
				incomingToken = c.Value
			}
		}
		if incomingToken == "" {
			log.Error("no refresh token supplied")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized request"))
			return
		}

		pair, err := service.Refresh(r.Context(), incomingToken)
		if err != nil {
			log.Error("failed to refresh tokens", sl.Err(err))
			if errors.Is(err, userservice.ErrInvalidToken) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid refresh token"))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not refresh tokens"))
			return
		}

		cookies.SetSession(w, pair.AccessToken, pair.RefreshToken)

		log.Info("tokens rotated")
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(pair, "new access token created"))
	}
}
