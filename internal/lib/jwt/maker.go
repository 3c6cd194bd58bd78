// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для выпуска и проверки пары токенов: короткоживущего
// access токена и долгоживущего refresh токена. Каждый тип токена подписывается
// своим секретным ключом и имеет свое время жизни.
package jwt

import (
	"time"

	"github.com/magabrotheeeer/user-account-service/internal/models"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateAccessToken выпускает access токен с claims пользователя.
	GenerateAccessToken(user *models.User) (string, error)
	// GenerateRefreshToken выпускает refresh токен с тем же набором claims.
	GenerateRefreshToken(user *models.User) (string, error)
	// ParseAccessToken проверяет access токен и возвращает его claims.
	ParseAccessToken(tokenStr string) (*CustomClaims, error)
	// ParseRefreshToken проверяет refresh токен и возвращает его claims.
	ParseRefreshToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием двух секретных ключей
// и двух значений времени жизни токена (TTL).
type MakerImpl struct {
	accessSecretKey  string        // Секретный ключ для подписи access токенов.
	refreshSecretKey string        // Секретный ключ для подписи refresh токенов.
	accessTokenTTL   time.Duration // Время жизни access токена.
	refreshTokenTTL  time.Duration // Время жизни refresh токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретных ключей и TTL.
func NewMaker(accessSecretKey, refreshSecretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		accessSecretKey:  accessSecretKey,
		refreshSecretKey: refreshSecretKey,
		accessTokenTTL:   accessTTL,
		refreshTokenTTL:  refreshTTL,
	}
}
