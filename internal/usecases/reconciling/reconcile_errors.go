package reconciling

import (
	"errors"
	"fmt"
)

var (
	ErrFetchReport   = errors.New("error fetching sa360 report")
	ErrReadSheet     = errors.New("error reading sheet")
	ErrEmptySheet    = errors.New("sheet has no data")
	ErrMissingColumn = errors.New("sheet is missing a required column")
	ErrInvalidTarget = errors.New("invalid sheet target")
)

// ReconcileError interrompe a passagem inteira; nada foi escrito na planilha
type ReconcileError struct {
	Err        error
	Code       string
	CustomerID string
	Details    string
}

func (e *ReconcileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReconcileError) Unwrap() error {
	return e.Err
}

func NewReconcileError(err error, code, customerID, details string) *ReconcileError {
	return &ReconcileError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
