package handler

import (
	"net/http"
	"strconv"

	"github.com/stensrud/agentic-dsta/internal/api/handler/router"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
)

func RunHistory(service runlogging.RunLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := router.Param(r, "customer_id")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro", nil)
				return
			}
			limit = parsed
		}

		// dry runs entram no histórico a menos que include_dry_runs=false
		includeDryRuns := true
		if raw := r.URL.Query().Get("include_dry_runs"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "include_dry_runs deve ser booleano", nil)
				return
			}
			includeDryRuns = parsed
		}

		runs, err := service.History(r.Context(), customerID, limit, includeDryRuns)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar execuções")
			return
		}

		writeJSON(w, http.StatusOK, runs)
	})
}

// GetRun devolve a execução completa, com as ações, desde que pertença ao cliente da URL
func GetRun(service runlogging.RunLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := router.Param(r, "customer_id")
		runID := router.Param(r, "run_id")

		run, err := service.Get(r.Context(), runID)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar execução")
			return
		}

		if run.CustomerID != customerID {
			apiErrors.WriteError(w, apiErrors.ErrRunNotFound, "Execução não encontrada para o cliente", nil)
			return
		}

		writeJSON(w, http.StatusOK, run)
	})
}
