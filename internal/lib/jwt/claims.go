// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// CustomClaims расширяет стандартные claims JWT, добавляя идентификатор,
// почту, имя и полное имя пользователя.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/user-account-service/internal/models"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserUID              string `json:"uid"`       // Уникальный идентификатор пользователя
	Email                string `json:"email"`     // Электронная почта
	Username             string `json:"username"`  // Имя пользователя
	FullName             string `json:"full_name"` // Полное имя пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateAccessToken создает короткоживущий access токен с claims пользователя,
// подписывая его access-секретом.
func (j *MakerImpl) GenerateAccessToken(user *models.User) (string, error) {
	return j.generate(user, j.accessSecretKey, j.accessTokenTTL)
}

// GenerateRefreshToken создает долгоживущий refresh токен с тем же набором claims,
// подписывая его refresh-секретом.
func (j *MakerImpl) GenerateRefreshToken(user *models.User) (string, error) {
	return j.generate(user, j.refreshSecretKey, j.refreshTokenTTL)
}

func (j *MakerImpl) generate(user *models.User, secretKey string, ttl time.Duration) (string, error) {
	claims := CustomClaims{
		UserUID:  user.UID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ParseAccessToken парсит access токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseAccessToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseAccessToken"
	return j.parse(op, tokenStr, j.accessSecretKey)
}

// ParseRefreshToken парсит refresh токен, проверяет его подпись и срок действия,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseRefreshToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseRefreshToken"
	return j.parse(op, tokenStr, j.refreshSecretKey)
}

func (j *MakerImpl) parse(op, tokenStr, secretKey string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
