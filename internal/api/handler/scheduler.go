package handler

import (
	"fmt"
	"net/http"

	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

type initAndRunRequest struct {
	AppName     string                  `json:"app_name"`
	CustomerID  string                  `json:"customer_id"`
	UserID      string                  `json:"user_id"`
	Usecase     domain.Usecase          `json:"usecase"`
	DryRun      *bool                   `json:"dry_run"`
	TriggeredBy domain.TriggerSource    `json:"triggered_by"`
	Changes     []domain.ChangeEnvelope `json:"changes"`
}

type initAndRunResponse struct {
	Status  domain.RunStatus    `json:"status"`
	Message string              `json:"message"`
	RunID   string              `json:"run_id"`
	Summary domain.RunSummary   `json:"summary"`
	Blocked []domain.BlockedRow `json:"blocked,omitempty"`
}

// InitAndRun dispara uma execução completa para o cliente, de forma síncrona
func InitAndRun(service orchestrating.Orchestrator, appName string, defaultDryRun bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - InitAndRun")

		var req initAndRunRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.AppName != appName {
			apiErrors.WriteError(w, apiErrors.ErrInvalidAppName, fmt.Sprintf("Este endpoint é restrito ao %s", appName), nil)
			return
		}

		customerID := req.CustomerID
		if customerID == "" {
			customerID = req.UserID
		}
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id (ou user_id) é obrigatório", nil)
			return
		}

		usecase := req.Usecase
		if usecase == "" {
			usecase = domain.UsecaseGoogleAds
		}

		dryRun := defaultDryRun
		if req.DryRun != nil {
			dryRun = *req.DryRun
		}

		triggeredBy := req.TriggeredBy
		if triggeredBy == "" {
			triggeredBy = domain.TriggerAPI
		}

		changes := make([]domain.Change, 0, len(req.Changes))
		for i, envelope := range req.Changes {
			change, err := envelope.ToChange()
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidChange, fmt.Sprintf("mudança %d: %s", i, err.Error()), nil)
				return
			}
			changes = append(changes, change)
		}

		logger.WithField("customer_id", customerID).Info("Scheduler: disparando execução do agente de decisão")

		result, err := service.Run(r.Context(), orchestrating.RunRequest{
			CustomerID:  customerID,
			Usecase:     usecase,
			TriggeredBy: triggeredBy,
			DryRun:      dryRun,
			Changes:     changes,
		})
		if err != nil {
			logger.WithError(err).Error("Erro ao executar o agente de decisão")
			writeServiceError(w, err, "Erro ao executar o agente de decisão")
			return
		}

		writeJSON(w, http.StatusOK, initAndRunResponse{
			Status:  result.Status,
			Message: fmt.Sprintf("Execução finalizada para %s", customerID),
			RunID:   result.RunID,
			Summary: result.Summary,
			Blocked: result.Blocked,
		})
	})
}
