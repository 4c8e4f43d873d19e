package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas de clientes
var (
	// Erros de validação
	ErrCustomerIDRequired = errors.New("customer ID is required")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInvalidUsecase     = errors.New("invalid usecase")
	ErrInvalidChange      = errors.New("invalid change")

	// Erros de banco de dados
	ErrFetchConfig   = errors.New("error fetching customer configuration")
	ErrEnqueueChange = errors.New("error enqueuing changes")

	ErrGenerateID = errors.New("error generating change id")
)

// AccountError é um erro com contexto adicional para a conta do cliente
type AccountError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID string // Cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *AccountError) Error() string {
	msg := e.Err.Error()
	if e.CustomerID != "" {
		msg = fmt.Sprintf("cliente %s: %s", e.CustomerID, msg)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAccountErrorWithID(err error, code string, customerID string, details string) *AccountError {
	return &AccountError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
