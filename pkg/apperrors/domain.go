package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidAttachment - фабрика для невалидных вложений (422).
// Вложение не найдено, принадлежит другому пользователю или имеет
// недопустимое расширение для своей категории.
func ErrInvalidAttachment(message string) *AppError {
	return New(CodeInvalidAttachment, "chat", message, http.StatusUnprocessableEntity)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Chat ---

// ErrDialogNotFound - диалог не найден.
var ErrDialogNotFound = New(
	CodeNotFound,
	"chat",
	"Dialog not found",
	http.StatusNotFound,
)

// ErrDialogAccessDenied - пользователь не является участником диалога.
var ErrDialogAccessDenied = New(
	CodeForbidden,
	"chat",
	"Access to dialog denied",
	http.StatusForbidden,
)

// ErrSelfDialog - диалог с самим собой невозможен.
var ErrSelfDialog = New(
	CodeValidationFailed,
	"chat",
	"Cannot open a dialog with yourself",
	http.StatusBadRequest,
)

// ErrEmptyMessage - сообщение без текста и без вложений.
var ErrEmptyMessage = New(
	CodeValidationFailed,
	"chat",
	"Message must contain text or at least one attachment",
	http.StatusBadRequest,
)

// ErrInvalidPagination - отрицательные skip/take.
var ErrInvalidPagination = New(
	CodeValidationFailed,
	"chat",
	"Pagination bounds must be non-negative",
	http.StatusBadRequest,
)

// --- Users ---

// ErrUserNotFound - пользователь (собеседник) не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Auth & User Status ---

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
