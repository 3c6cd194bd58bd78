// Package app предоставляет маршруты приложения.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/avatar"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/cover"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/current"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/fullname"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/passwordchange"
	"github.com/magabrotheeeer/user-account-service/internal/http/handlers/profile/username"
	"github.com/magabrotheeeer/user-account-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-account-service/internal/lib/jwt"
	userservice "github.com/magabrotheeeer/user-account-service/internal/services/user"
	"github.com/magabrotheeeer/user-account-service/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *userservice.Service, jwtMaker jwt.Maker, db *repository.Storage, allowedOrigin string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Cookie с токенами требуют credentials, поэтому origin настраивается явно.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api/v1/users", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, service))
		r.Post("/login", login.New(logger, service))
		r.Post("/refresh-token", refresh.New(logger, service))
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(jwtMaker, service, logger))
			r.Post("/logout", logout.New(logger, service))
			r.Post("/update-username", username.New(logger, service))
			r.Post("/update-fullname", fullname.New(logger, service))
			r.Post("/update-avatar", avatar.New(logger, service))
			r.Post("/update-coverImage", cover.New(logger, service))
			r.Post("/update-password", passwordchange.New(logger, service))
			r.Get("/curr-user", current.New(logger))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
