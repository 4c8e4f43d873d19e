package validating

import (
	"errors"
	"fmt"
)

// Motivos de rejeição de uma mudança
var (
	ErrUnsupportedForChannel = errors.New("bidding scheme unsupported for channel")
	ErrPortfolioNotAllowed   = errors.New("portfolio strategy not allowed for channel")
	ErrInvalidSchemeShape    = errors.New("invalid bidding scheme shape")
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrInvalidValue          = errors.New("invalid value")
)

// Códigos usados nas ações e na API
const (
	CodeUnsupportedForChannel = "UnsupportedForChannel"
	CodePortfolioNotAllowed   = "PortfolioNotAllowed"
	CodeInvalidSchemeShape    = "InvalidSchemeShape"
	CodeMissingRequiredField  = "MissingRequiredField"
	CodeInvalidValue          = "InvalidValue"
)

// ValidationError é a rejeição de uma mudança com o campo e o motivo
type ValidationError struct {
	Err     error  // Motivo base
	Code    string // Código do motivo
	Field   string // Campo envolvido (quando aplicável)
	Details string // Detalhes legíveis
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error, code, field, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}

func unsupported(details string) *ValidationError {
	return newValidationError(ErrUnsupportedForChannel, CodeUnsupportedForChannel, "scheme", details)
}

func portfolioNotAllowed(details string) *ValidationError {
	return newValidationError(ErrPortfolioNotAllowed, CodePortfolioNotAllowed, "scheme", details)
}

func invalidShape(field, details string) *ValidationError {
	return newValidationError(ErrInvalidSchemeShape, CodeInvalidSchemeShape, field, details)
}

func missingField(field, details string) *ValidationError {
	return newValidationError(ErrMissingRequiredField, CodeMissingRequiredField, field, details)
}

func invalidValue(field, details string) *ValidationError {
	return newValidationError(ErrInvalidValue, CodeInvalidValue, field, details)
}
