package domain

import "time"

type ActionErrorKind string

const (
	ActionErrorValidation       ActionErrorKind = "validation_rejected"
	ActionErrorExternalAPI      ActionErrorKind = "external_api_error"
	ActionErrorReconciliation   ActionErrorKind = "reconciliation_blocked"
	ActionErrorInvalidArguments ActionErrorKind = "invalid_arguments"
)

type ActionError struct {
	Kind    ActionErrorKind `json:"kind"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message"`
}

type ActionResult struct {
	Success           bool         `json:"success"`
	ResourceReference string       `json:"resource_reference,omitempty"`
	Message           string       `json:"message,omitempty"`
	Error             *ActionError `json:"error,omitempty"`
}

// Action é o registro imutável de uma tentativa de mutação, executada ou simulada.
// Ações reais e simuladas têm exatamente o mesmo formato.
type Action struct {
	Timestamp   time.Time      `json:"timestamp"`
	Tool        string         `json:"tool"`
	Params      map[string]any `json:"params"`
	Description string         `json:"description"`
	Simulated   bool           `json:"simulated"`
	Warnings    []string       `json:"warnings,omitempty"`
	Result      ActionResult   `json:"result"`
}

func (a Action) Succeeded() bool {
	return a.Result.Success
}

// Rejected indica que a ação foi barrada antes de chegar ao sistema externo
func (a Action) Rejected() bool {
	if a.Result.Error == nil {
		return false
	}
	return a.Result.Error.Kind == ActionErrorValidation || a.Result.Error.Kind == ActionErrorReconciliation
}
