// Package middlewarectx содержит HTTP middleware для аутентификации запросов.
//
// AuthMiddleware извлекает access токен из cookie или заголовка Authorization,
// проверяет его подпись и срок действия, загружает санированный профиль
// пользователя и кладет его в контекст запроса.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-account-service/internal/http/response"
	"github.com/magabrotheeeer/user-account-service/internal/lib/cookies"
	"github.com/magabrotheeeer/user-account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserKey — ключ для санированного профиля пользователя в контексте.
const UserKey Key = "user"

// ProfileProvider описывает интерфейс загрузки санированного профиля по UID.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userUID string) (*models.Profile, error)
}

// AuthMiddleware возвращает HTTP middleware, который аутентифицирует запрос
// по access токену. Токен ищется сначала в cookie, затем в заголовке
// Authorization с префиксом "Bearer ". Автоматического обновления по
// refresh-токену нет: просроченный access токен дает 401.
func AuthMiddleware(jwtMaker jwt.Maker, users ProfileProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := extractToken(r)
			if tokenStr == "" {
				log.Error("missing access token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized request"))
				return
			}

			claims, err := jwtMaker.ParseAccessToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired access token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid or expired token"))
				return
			}

			profile, err := users.GetProfile(r.Context(), claims.UserUID)
			if err != nil {
				log.Error("token owner not found", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(http.StatusUnauthorized, "invalid access token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFromContext возвращает профиль аутентифицированного пользователя
// из контекста запроса.
func ProfileFromContext(ctx context.Context) (*models.Profile, bool) {
	profile, ok := ctx.Value(UserKey).(*models.Profile)
	return profile, ok
}

func extractToken(r *http.Request) string {
	if c, err := r.Cookie(cookies.AccessToken); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
