// Package apperror provides the standardized error envelope returned to
// presentational consumers. Every intent failure goes through this
// package so consumers render a consistent message instead of internal
// detail.
package apperror

import "errors"

// ErrNoEncontrado marks lookups whose id matched no record. Most flows
// treat it as a silent no-op; it exists so callers that do want to
// distinguish absence can errors.Is against it.
var ErrNoEncontrado = errors.New("no encontrado")

// AppError is the canonical error envelope for intent failures.
type AppError struct {
	Detail string `json:"detail"`
}

func (e *AppError) Error() string { return e.Detail }

func New(msg string) *AppError {
	return &AppError{Detail: msg}
}

// ValidationError wraps multiple field errors from intent payload
// validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
