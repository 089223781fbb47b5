package service

import "errors"

// Ошибки уровня бизнес-логики. Преобразуются в HTTP-статусы только на
// границе обработчиков; внутри сервисов статусы не фигурируют.
var (
	// ErrUnauthenticated - запрос без действующей сессии.
	ErrUnauthenticated = errors.New("пользователь не аутентифицирован")
	// ErrForbidden - пользователь аутентифицирован, но не имеет нужной роли
	// или не является участником плана.
	ErrForbidden = errors.New("недостаточно прав")
	// ErrNotFound - запрошенная сущность отсутствует.
	ErrNotFound = errors.New("не найдено")
	// ErrValidation - отсутствуют или некорректны поля запроса.
	ErrValidation = errors.New("некорректные данные запроса")
	// ErrAlreadyParticipant - пользователь уже состоит в плане.
	ErrAlreadyParticipant = errors.New("пользователь уже участник плана")
	// ErrLimitExceeded - превышен лимит одновременного участия в планах.
	ErrLimitExceeded = errors.New("превышен лимит участия в планах")
	// ErrLinkClosed - ссылка-приглашение закрыта владельцем.
	ErrLinkClosed = errors.New("ссылка-приглашение закрыта")
)
