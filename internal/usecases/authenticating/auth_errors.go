package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecret      = errors.New("auth secret not configured")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrInvalidServiceRole = errors.New("papel de serviço inválido")
	ErrMissingServiceName = errors.New("service_name ausente no token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	ServiceName string // Serviço chamador (quando aplicável)
	Details     string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.ServiceName != "" {
		msg = fmt.Sprintf("%s (serviço %s)", msg, e.ServiceName)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInvalidServiceRole) ||
		errors.Is(err, ErrMissingServiceName)
}

// NewAuthErrorForService é usado quando o token foi lido mas o serviço não pode usar a API
func NewAuthErrorForService(baseErr error, code string, serviceName string, details string) *AuthError {
	return &AuthError{
		Err:         baseErr,
		Code:        code,
		ServiceName: serviceName,
		Details:     details,
	}
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
