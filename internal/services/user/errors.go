package user

import "errors"

// Ошибки бизнес-уровня. HTTP-обработчики сопоставляют их со статус-кодами
// единого конверта ответа.
var (
	// ErrEmptyFields — обязательное поле пустое после обрезки пробелов.
	ErrEmptyFields = errors.New("all fields are required")
	// ErrAvatarRequired — при регистрации не передан файл аватара.
	ErrAvatarRequired = errors.New("avatar image is required")
	// ErrFileRequired — в запросе на смену медиафайла нет файла.
	ErrFileRequired = errors.New("no file provided")
	// ErrUserExists — имя пользователя или почта уже заняты.
	ErrUserExists = errors.New("user with username or email already exists")
	// ErrUserNotFound — пользователь не найден.
	ErrUserNotFound = errors.New("no user exists with this username or email")
	// ErrInvalidCredentials — пароль не прошел проверку.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — refresh-токен отсутствует, просрочен или не прошел проверку подписи.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrValueMismatch — переданное старое значение не совпадает с текущим.
	ErrValueMismatch = errors.New("old value does not match the current one")
	// ErrSameValue — новое значение совпадает со старым.
	ErrSameValue = errors.New("new value must differ from the old one")
	// ErrUploadFailed — внешнее медиахранилище не приняло файл.
	ErrUploadFailed = errors.New("could not upload file to media store")
	// ErrMediaDelete — внешнее медиахранилище не удалило прежний файл.
	ErrMediaDelete = errors.New("could not delete file from media store")
)
