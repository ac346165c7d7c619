package services

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for the failure taxonomy. Handlers translate these to
// status codes; none of them is fatal to the process.
var (
	ErrNotFound     = errors.New("registro não encontrado")
	ErrForbidden    = errors.New("acesso negado")
	ErrUnauthorized = errors.New("credenciais inválidas")
)

// ValidationError carries field-keyed messages for 400 responses.
// General errors not tied to a field use the "detail" key.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a single-field validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
