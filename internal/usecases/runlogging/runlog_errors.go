package runlogging

import (
	"errors"
	"fmt"
)

var (
	ErrRunNotFound       = errors.New("run not found")
	ErrRunAlreadySealed  = errors.New("run already completed")
	ErrInvalidRunRequest = errors.New("invalid run request")
	ErrRunLogWrite       = errors.New("error writing run log")
	ErrRunLogRead        = errors.New("error reading run log")
	ErrGenerateRunID     = errors.New("error generating run id")
)

// RunLogError é um erro do log de execuções com o run_id envolvido
type RunLogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RunID   string // Execução envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *RunLogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RunLogError) Unwrap() error {
	return e.Err
}

func NewRunLogError(err error, code, runID, details string) *RunLogError {
	return &RunLogError{
		Err:     err,
		Code:    code,
		RunID:   runID,
		Details: details,
	}
}
