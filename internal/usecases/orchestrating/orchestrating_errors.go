package orchestrating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRunRequest = errors.New("invalid run request")
	ErrRunInProgress     = errors.New("run already in progress for customer")
	ErrCustomerNotFound  = errors.New("customer configuration not found")
	ErrLoadConfig        = errors.New("error loading customer configuration")
	ErrStartRun          = errors.New("error starting run")
	ErrAcquireLease      = errors.New("error acquiring run lease")
)

// RunError é um erro que impede a execução de começar
type RunError struct {
	Err        error
	Code       string
	CustomerID string
	Details    string
}

func (e *RunError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

func NewRunError(err error, code, customerID, details string) *RunError {
	return &RunError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
