package errors

import (
	"errors"
	"fmt"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	// Все ошибки ядра (см. Error) сводятся к ней на уровне HTTP.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)

// Reason уточняет, почему операция завершилась NotFound.
// Наружу все причины отдаются одинаково (404), различие нужно для логов и тестов.
type Reason string

const (
	ReasonNotFound           Reason = "not_found"
	ReasonInvalidInput       Reason = "invalid_input"
	ReasonEmptyResult        Reason = "empty_result"
	ReasonPersistenceFailure Reason = "persistence_failure"
)

// Error - тегированная ошибка сервисного слоя
type Error struct {
	Reason Reason
	Op     string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is делает любую причину эквивалентной ErrNotFound
func (e *Error) Is(target error) bool {
	return target == ErrNotFound
}

// New создает тегированную ошибку
func New(reason Reason, op string, err error) *Error {
	return &Error{Reason: reason, Op: op, Err: err}
}

// NotFound - запись отсутствует
func NotFound(op string, err error) *Error {
	return New(ReasonNotFound, op, err)
}

// InvalidInput - клиент прислал неполный или некорректный запрос
func InvalidInput(op string, format string, args ...interface{}) *Error {
	return New(ReasonInvalidInput, op, fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...)))
}

// EmptyResult - запрос корректен, но данных нет
func EmptyResult(op string) *Error {
	return New(ReasonEmptyResult, op, nil)
}

// PersistenceFailure - ошибка хранилища при записи/удалении
func PersistenceFailure(op string, err error) *Error {
	return New(ReasonPersistenceFailure, op, err)
}

// ReasonOf возвращает причину ошибки. Для ErrNotFound без тега - ReasonNotFound,
// для прочих ошибок - пустую строку.
func ReasonOf(err error) Reason {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	if errors.Is(err, ErrNotFound) {
		return ReasonNotFound
	}
	return ""
}
