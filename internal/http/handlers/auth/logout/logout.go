// Package logout реализует HTTP-обработчик выхода пользователя.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/cookies"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
)

// SessionCloser описывает интерфейс сервиса завершения сессии.
type SessionCloser interface {
	Logout(ctx context.Context, userUID string) error
}

// New
// @Summary Выход пользователя: сброс refresh-токена и очистка cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse "Пользователь вышел"
// @Failure 401 {object} response.ErrorResponse "Запрос не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func New(log *slog.Logger, service SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

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

		if err := service.Logout(r.Context(), profile.UID); err != nil {
			log.Error("failed to log out", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(http.StatusInternalServerError, "could not log out"))
			return
		}

		cookies.ClearSession(w)

		log.Info("user logged out", slog.String("username", profile.Username))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(map[string]any{}, "user logged out"))
	}
}
