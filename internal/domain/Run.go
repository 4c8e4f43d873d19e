package domain

import "time"

type Usecase string

const (
	UsecaseGoogleAds Usecase = "google_ads"
	UsecaseSA360     Usecase = "sa360"
)

func (u Usecase) IsValid() bool {
	return u == UsecaseGoogleAds || u == UsecaseSA360
}

type TriggerSource string

const (
	TriggerScheduler TriggerSource = "scheduler"
	TriggerManual    TriggerSource = "manual"
	TriggerAPI       TriggerSource = "api"
)

type RunStatus string

const (
	RunStatusRunning                    RunStatus = "running"
	RunStatusSuccess                    RunStatus = "success"
	RunStatusPartialFailure             RunStatus = "partial_failure"
	RunStatusError                      RunStatus = "error"
	RunStatusCompletedWithLoggingErrors RunStatus = "completed_with_logging_errors"
)

func (s RunStatus) IsTerminal() bool {
	return s != "" && s != RunStatusRunning
}

type RunSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Rejected  int `json:"rejected"`
	Blocked   int `json:"blocked,omitempty"`
	Inserted  int `json:"inserted,omitempty"`
	Updated   int `json:"updated,omitempty"`
}

// SummarizeActions conta o resultado de cada ação de uma execução
func SummarizeActions(actions []Action) RunSummary {
	summary := RunSummary{Total: len(actions)}
	for _, action := range actions {
		switch {
		case action.Succeeded():
			summary.Succeeded++
		case action.Rejected():
			summary.Rejected++
		default:
			summary.Failed++
		}
	}
	return summary
}

// Run é o documento de auditoria de uma execução por cliente
type Run struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Usecase     Usecase       `json:"usecase"`
	TriggeredBy TriggerSource `json:"triggered_by"`
	DryRun      bool          `json:"dry_run"`
	Status      RunStatus     `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	Actions     []Action      `json:"actions"`
	Summary     *RunSummary   `json:"summary,omitempty"`
	Error       *string       `json:"error,omitempty"`
}

// RunMetadata é a visão resumida usada no histórico
type RunMetadata struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Usecase     Usecase       `json:"usecase"`
	TriggeredBy TriggerSource `json:"triggered_by"`
	DryRun      bool          `json:"dry_run"`
	Status      RunStatus     `json:"status"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	ActionCount int           `json:"action_count"`
	Summary     *RunSummary   `json:"summary,omitempty"`
	Error       *string       `json:"error,omitempty"`
}

type RunResult struct {
	RunID   string       `json:"run_id"`
	Status  RunStatus    `json:"status"`
	Summary RunSummary   `json:"summary"`
	Actions []Action     `json:"actions"`
	Blocked []BlockedRow `json:"blocked,omitempty"`
}
