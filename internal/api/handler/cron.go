package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stensrud/agentic-dsta/internal/api/handler/router"
	"github.com/stensrud/agentic-dsta/internal/scheduler"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

const (
	CronJobTypeDecisionRun = "decision-run"
	CronJobTypeAll         = "all"
)

// CronJob é o que o handler precisa de cada agendador
type CronJob interface {
	TriggerManualSync(ctx context.Context) error
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	DecisionRunSync CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := router.Param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDecisionRun, CronJobTypeAll:
			if services.DecisionRunSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de execuções não disponível", nil)
				return
			}
			if err := services.DecisionRunSync.TriggerManualSync(r.Context()); err != nil {
				if errors.Is(err, scheduler.ErrSyncInProgress) {
					apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Execuções agendadas já em andamento", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownCronJob, "Tipo de cron job inválido. Valores aceitos: decision-run, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DecisionRunSync != nil {
			status[CronJobTypeDecisionRun] = services.DecisionRunSync.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
