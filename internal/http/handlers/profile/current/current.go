// Package current реализует HTTP-обработчик получения текущего пользователя.
package current

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-account-service/internal/http/response"
)

// New
// @Summary Текущий аутентифицированный пользователь
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Запрос не аутентифицирован"
// @Router /curr-user [get]
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.current.New"

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

		render.Status(r, http.StatusOK)
		render.JSON(w, r, response.OKWithData(profile, "user fetched successfully"))
	}
}
