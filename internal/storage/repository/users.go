package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/user-account-service/internal/models"
)

const userColumns = `uid, username, email, full_name, password_hash,
			      avatar_url, cover_image_url, refresh_token, created_at, updated_at`

// CreateUser сохраняет нового пользователя в базу данных и возвращает его UID.
// Нарушение уникальности username или email возвращается как ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (username, email, full_name, password_hash,
			      avatar_url, cover_image_url)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.FullName, user.PasswordHash,
		user.AvatarURL, user.CoverImageURL).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByUID возвращает пользователя по его UID.
func (s *Storage) GetUserByUID(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUserByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE uid = $1`
	return s.scanUser(op, s.DB.QueryRowContext(ctx, query, userUID))
}

// GetUserByLogin возвращает пользователя по имени пользователя или электронной почте.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE username = $1 OR email = $1`
	return s.scanUser(op, s.DB.QueryRowContext(ctx, query, login))
}

// UpdateRefreshToken перезаписывает refresh-токен пользователя.
// Пустая строка означает выход из системы.
func (s *Storage) UpdateRefreshToken(ctx context.Context, userUID, refreshToken string) error {
	const op = "storage.UpdateRefreshToken"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET refresh_token = $1, updated_at = NOW()
			  WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, refreshToken, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// UpdateUsername обновляет имя пользователя и возвращает свежую запись.
// Нарушение уникальности возвращается как ErrUserExists.
func (s *Storage) UpdateUsername(ctx context.Context, userUID, username string) (*models.User, error) {
	const op = "storage.UpdateUsername"
	return s.updateUserField(ctx, op, "username", username, userUID)
}

// UpdateFullname обновляет полное имя пользователя и возвращает свежую запись.
func (s *Storage) UpdateFullname(ctx context.Context, userUID, fullName string) (*models.User, error) {
	const op = "storage.UpdateFullname"
	return s.updateUserField(ctx, op, "full_name", fullName, userUID)
}

// UpdateAvatarURL обновляет ссылку на аватар пользователя и возвращает свежую запись.
func (s *Storage) UpdateAvatarURL(ctx context.Context, userUID, avatarURL string) (*models.User, error) {
	const op = "storage.UpdateAvatarURL"
	return s.updateUserField(ctx, op, "avatar_url", avatarURL, userUID)
}

// UpdateCoverImageURL обновляет ссылку на обложку профиля и возвращает свежую запись.
func (s *Storage) UpdateCoverImageURL(ctx context.Context, userUID, coverImageURL string) (*models.User, error) {
	const op = "storage.UpdateCoverImageURL"
	return s.updateUserField(ctx, op, "cover_image_url", coverImageURL, userUID)
}

// UpdatePasswordHash перезаписывает хэш пароля пользователя.
func (s *Storage) UpdatePasswordHash(ctx context.Context, userUID, passwordHash string) error {
	const op = "storage.UpdatePasswordHash"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET password_hash = $1, updated_at = NOW()
			  WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, passwordHash, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

func (s *Storage) updateUserField(ctx context.Context, op, column, value, userUID string) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	// column приходит только из фиксированного набора методов выше.
	query := `UPDATE users
			  SET ` + column + ` = $1, updated_at = NOW()
			  WHERE uid = $2
			  RETURNING ` + userColumns
	row := s.DB.QueryRowContext(ctx, query, value, userUID)
	u, err := s.scanUser(op, row)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Storage) scanUser(op string, row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var coverImageURL, refreshToken sql.NullString
	err := row.Scan(&u.UID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash,
		&u.AvatarURL, &coverImageURL, &refreshToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.CoverImageURL = coverImageURL.String
	u.RefreshToken = refreshToken.String
	return u, nil
}
