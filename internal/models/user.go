// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля, ссылки на медиафайлы
// и текущий refresh-токен. Структура используется в бизнес‑логике
// и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID           string    // Уникальный идентификатор пользователя
	Username      string    // Имя пользователя (уникальное, в нижнем регистре)
	Email         string    // Электронная почта (уникальная, в нижнем регистре)
	FullName      string    // Полное имя пользователя
	PasswordHash  string    // Хэш пароля пользователя
	AvatarURL     string    // Ссылка на аватар в медиахранилище (обязательная)
	CoverImageURL string    // Ссылка на обложку профиля (опциональная)
	RefreshToken  string    // Текущий refresh-токен, не более одного на пользователя
	CreatedAt     time.Time // Дата создания записи
	UpdatedAt     time.Time // Дата последнего изменения записи
}

// Profile представляет пользователя без секретных полей.
// Именно в таком виде запись отдается клиенту и кладется в контекст запроса.
type Profile struct {
	UID           string    `json:"uid"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	AvatarURL     string    `json:"avatarUrl"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Profile возвращает представление пользователя без хэша пароля и refresh-токена.
func (u *User) Profile() *Profile {
	return &Profile{
		UID:           u.UID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
