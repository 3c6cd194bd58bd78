// Package cookies содержит вспомогательные функции для установки и очистки
// сессионных cookie с access и refresh токенами. Оба cookie ставятся с флагами
// HttpOnly и Secure и действуют на весь сайт.
package cookies

import "net/http"

const (
	// AccessToken — имя cookie с access токеном.
	AccessToken = "accessToken"
	// RefreshToken — имя cookie с refresh токеном.
	RefreshToken = "refreshToken"
)

// SetSession устанавливает оба сессионных cookie с переданными токенами.
func SetSession(w http.ResponseWriter, accessToken, refreshToken string) {
	set(w, AccessToken, accessToken)
	set(w, RefreshToken, refreshToken)
}

// ClearSession очищает оба сессионных cookie.
func ClearSession(w http.ResponseWriter) {
	unset(w, AccessToken)
	unset(w, RefreshToken)
}

func set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func unset(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
