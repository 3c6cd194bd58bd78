// Package user содержит логику бизнес-уровня для работы с учётными записями:
// регистрация, вход и выход, ротация refresh-токена и изменение профиля.
package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/user-account-service/internal/lib/jwt"
	"github.com/magabrotheeeer/user-account-service/internal/lib/password"
	"github.com/magabrotheeeer/user-account-service/internal/lib/sl"
	"github.com/magabrotheeeer/user-account-service/internal/media"
	"github.com/magabrotheeeer/user-account-service/internal/models"
	"github.com/magabrotheeeer/user-account-service/internal/storage/repository"
)

// profileCacheTTL ограничивает время жизни закэшированного профиля.
const profileCacheTTL = 5 * time.Minute

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUID возвращает пользователя по UID или ошибку, если не найден.
	GetUserByUID(ctx context.Context, userUID string) (*models.User, error)
	// GetUserByLogin возвращает пользователя по username или email.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// UpdateRefreshToken перезаписывает refresh-токен пользователя.
	UpdateRefreshToken(ctx context.Context, userUID, refreshToken string) error
	// UpdateUsername обновляет имя пользователя и возвращает свежую запись.
	UpdateUsername(ctx context.Context, userUID, username string) (*models.User, error)
	// UpdateFullname обновляет полное имя и возвращает свежую запись.
	UpdateFullname(ctx context.Context, userUID, fullName string) (*models.User, error)
	// UpdateAvatarURL обновляет ссылку на аватар и возвращает свежую запись.
	UpdateAvatarURL(ctx context.Context, userUID, avatarURL string) (*models.User, error)
	// UpdateCoverImageURL обновляет ссылку на обложку и возвращает свежую запись.
	UpdateCoverImageURL(ctx context.Context, userUID, coverImageURL string) (*models.User, error)
	// UpdatePasswordHash перезаписывает хэш пароля.
	UpdatePasswordHash(ctx context.Context, userUID, passwordHash string) error
}

// Cache описывает контракт кэша профилей.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Blob описывает загружаемый пользователем файл.
type Blob struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// TokenPair содержит выпущенную пару токенов.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service отвечает за регистрацию, аутентификацию, сессии и изменение профиля.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	media    media.Store
	cache    Cache
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker, mediaStore media.Store, cache Cache, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		media:    mediaStore,
		cache:    cache,
		log:      log,
	}
}

// Register создает нового пользователя: проверяет заполненность полей и
// уникальность username/email, загружает аватар (обязателен) и обложку
// (опциональна), хэширует пароль и возвращает санированный профиль.
// Проверка уникальности выполняется до загрузки файлов, чтобы обречённая
// регистрация не оставляла блобов в медиахранилище.
func (s *Service) Register(ctx context.Context, fullName, username, email, rawPassword string, avatar, cover *Blob) (*models.Profile, error) {
	const op = "services.user.Register"

	fullName = strings.TrimSpace(fullName)
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || username == "" || email == "" || strings.TrimSpace(rawPassword) == "" {
		return nil, ErrEmptyFields
	}

	for _, login := range []string{username, email} {
		_, err := s.users.GetUserByLogin(ctx, login)
		if err == nil {
			return nil, ErrUserExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if avatar == nil {
		return nil, ErrAvatarRequired
	}

	avatarURL, err := s.media.Upload(ctx, avatar.Reader, avatar.Size, avatar.ContentType)
	if err != nil {
		s.log.Error("avatar upload failed", sl.Err(err))
		return nil, ErrUploadFailed
	}

	// Ошибка загрузки обложки не прерывает регистрацию: обложка опциональна.
	coverImageURL := ""
	if cover != nil {
		coverImageURL, err = s.media.Upload(ctx, cover.Reader, cover.Size, cover.ContentType)
		if err != nil {
			s.log.Warn("cover image upload failed, continuing without it", sl.Err(err))
			coverImageURL = ""
		}
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	newUID, err := s.users.CreateUser(ctx, models.User{
		Username:      username,
		Email:         email,
		FullName:      fullName,
		PasswordHash:  hashed,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.users.GetUserByUID(ctx, newUID)
	if err != nil {
		return nil, fmt.Errorf("%s: created user is not retrievable: %w", op, err)
	}
	return created.Profile(), nil
}

// Login проверяет пароль пользователя по username или email и выпускает
// новую пару токенов. Новый refresh-токен перезаписывает прежний,
// что делает его непригодным для последующих обновлений.
func (s *Service) Login(ctx context.Context, identifier, rawPassword string) (*models.Profile, *TokenPair, error) {
	const op = "services.user.Login"

	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || rawPassword == "" {
		return nil, nil, ErrEmptyFields
	}

	u, err := s.users.GetUserByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, u)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return u.Profile(), pair, nil
}

// Logout сбрасывает refresh-токен пользователя.
func (s *Service) Logout(ctx context.Context, userUID string) error {
	const op = "services.user.Logout"

	if err := s.users.UpdateRefreshToken(ctx, userUID, ""); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateProfile(userUID)
	return nil
}

// Refresh проверяет представленный refresh-токен и выпускает новую пару,
// перезаписывая сохранённый токен. Представленный токен намеренно не
// сверяется с сохранённым: любой непросроченный токен с валидной подписью
// принимается, ротация делает его бесполезным только после перезаписи.
func (s *Service) Refresh(ctx context.Context, incomingToken string) (*TokenPair, error) {
	const op = "services.user.Refresh"

	if incomingToken == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.jwtMaker.ParseRefreshToken(incomingToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.users.GetUserByUID(ctx, claims.UserUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pair, nil
}

// ChangePassword проверяет старый пароль и сохраняет хэш нового.
func (s *Service) ChangePassword(ctx context.Context, userUID, oldPassword, newPassword string) error {
	const op = "services.user.ChangePassword"

	if oldPassword == "" || newPassword == "" {
		return ErrEmptyFields
	}
	if oldPassword == newPassword {
		return ErrSameValue
	}

	u, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(u.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userUID, hashed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateProfile(userUID)
	return nil
}

// UpdateUsername меняет имя пользователя после сверки старого значения.
func (s *Service) UpdateUsername(ctx context.Context, acting *models.Profile, oldUsername, newUsername string) (*models.Profile, error) {
	const op = "services.user.UpdateUsername"

	if oldUsername == "" || newUsername == "" {
		return nil, ErrEmptyFields
	}
	if oldUsername != acting.Username {
		return nil, ErrValueMismatch
	}
	if oldUsername == newUsername {
		return nil, ErrSameValue
	}

	updated, err := s.users.UpdateUsername(ctx, acting.UID, strings.ToLower(strings.TrimSpace(newUsername)))
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateProfile(acting.UID)
	return updated.Profile(), nil
}

// UpdateFullname меняет полное имя пользователя после сверки старого значения.
func (s *Service) UpdateFullname(ctx context.Context, acting *models.Profile, oldFullname, newFullname string) (*models.Profile, error) {
	const op = "services.user.UpdateFullname"

	if oldFullname == "" || newFullname == "" {
		return nil, ErrEmptyFields
	}
	if oldFullname != acting.FullName {
		return nil, ErrValueMismatch
	}
	if oldFullname == newFullname {
		return nil, ErrSameValue
	}

	updated, err := s.users.UpdateFullname(ctx, acting.UID, strings.TrimSpace(newFullname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateProfile(acting.UID)
	return updated.Profile(), nil
}

// ChangeAvatar загружает новый аватар, удаляет прежний из медиахранилища
// и сохраняет новый URL. Ошибка удаления прежнего файла прерывает операцию,
// уже загруженный новый блоб при этом остаётся в хранилище.
func (s *Service) ChangeAvatar(ctx context.Context, acting *models.Profile, blob *Blob) (*models.Profile, error) {
	const op = "services.user.ChangeAvatar"
	return s.changeMedia(ctx, op, acting, blob, acting.AvatarURL, s.users.UpdateAvatarURL)
}

// ChangeCoverImage загружает новую обложку профиля, удаляет прежнюю
// и сохраняет новый URL. Если обложки ещё не было, шаг удаления пропускается.
func (s *Service) ChangeCoverImage(ctx context.Context, acting *models.Profile, blob *Blob) (*models.Profile, error) {
	const op = "services.user.ChangeCoverImage"
	return s.changeMedia(ctx, op, acting, blob, acting.CoverImageURL, s.users.UpdateCoverImageURL)
}

func (s *Service) changeMedia(ctx context.Context, op string, acting *models.Profile, blob *Blob, oldURL string,
	persist func(ctx context.Context, userUID, url string) (*models.User, error)) (*models.Profile, error) {
	if blob == nil {
		return nil, ErrFileRequired
	}

	newURL, err := s.media.Upload(ctx, blob.Reader, blob.Size, blob.ContentType)
	if err != nil {
		s.log.Error("media upload failed", slog.String("op", op), sl.Err(err))
		return nil, ErrUploadFailed
	}

	if oldURL != "" {
		if err := s.media.Delete(ctx, media.MediaID(oldURL)); err != nil {
			s.log.Error("old media delete failed", slog.String("op", op), sl.Err(err))
			return nil, ErrMediaDelete
		}
	}

	updated, err := persist(ctx, acting.UID, newURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidateProfile(acting.UID)
	return updated.Profile(), nil
}

// GetProfile возвращает санированный профиль пользователя по UID,
// используя сквозной кэш.
func (s *Service) GetProfile(ctx context.Context, userUID string) (*models.Profile, error) {
	const op = "services.user.GetProfile"

	key := profileCacheKey(userUID)
	var cached models.Profile
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("profile cache read failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	u, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := u.Profile()
	if err := s.cache.Set(key, profile, profileCacheTTL); err != nil {
		s.log.Warn("profile cache write failed", sl.Err(err))
	}
	return profile, nil
}

// issueTokenPair выпускает пару токенов и сохраняет refresh-токен в записи
// пользователя, перезаписывая прежний.
func (s *Service) issueTokenPair(ctx context.Context, u *models.User) (*TokenPair, error) {
	accessToken, err := s.jwtMaker.GenerateAccessToken(u)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMaker.GenerateRefreshToken(u)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, u.UID, refreshToken); err != nil {
		return nil, err
	}
	s.invalidateProfile(u.UID)
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) invalidateProfile(userUID string) {
	if err := s.cache.Invalidate(profileCacheKey(userUID)); err != nil {
		s.log.Warn("profile cache invalidation failed", sl.Err(err))
	}
}

func profileCacheKey(userUID string) string {
	return "user:" + userUID
}
