// Package apperr определяет помеченные ошибки бизнес-уровня.
//
// Ошибки валидации и нарушения бизнес-правил возвращаются значениями этого
// типа, чтобы каждый вызывающий был обязан проверить результат. Ошибки
// инфраструктуры (недоступное хранилище) этим пакетом не оборачиваются и
// поднимаются наверх как есть.
package apperr

import "errors"

// Kind вид бизнес-ошибки.
type Kind string

const (
	// KindInvalidData некорректные входные данные или нарушение бизнес-правила.
	KindInvalidData Kind = "invalid_data"
	// KindNotFound запрошенная сущность отсутствует.
	KindNotFound Kind = "not_found"
)

// Error помеченная бизнес-ошибка с человекочитаемым сообщением.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// InvalidData создаёт ошибку некорректных данных.
func InvalidData(msg string) *Error {
	return &Error{Kind: KindInvalidData, Message: msg}
}

// NotFound создаёт ошибку отсутствующей сущности.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsInvalidData сообщает, является ли err бизнес-ошибкой некорректных данных.
func IsInvalidData(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == KindInvalidData
}

// IsNotFound сообщает, является ли err ошибкой отсутствующей сущности.
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == KindNotFound
}
