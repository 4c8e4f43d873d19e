package handler

import (
	"net/http"

	"github.com/stensrud/agentic-dsta/internal/api/handler/router"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/account"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

type enqueueChangesRequest struct {
	Usecase domain.Usecase          `json:"usecase"`
	Changes []domain.ChangeEnvelope `json:"changes"`
}

func GetCustomerConfig(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := router.Param(r, "customer_id")

		view, err := service.GetCustomerConfig(r.Context(), customerID)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar configuração do cliente")
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}

// EnqueueChanges guarda mudanças tipadas para a próxima execução do cliente
func EnqueueChanges(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - EnqueueChanges")

		customerID := router.Param(r, "customer_id")

		var req enqueueChangesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		pending, err := service.EnqueueChanges(r.Context(), customerID, req.Usecase, req.Changes)
		if err != nil {
			writeServiceError(w, err, "Erro ao enfileirar mudanças")
			return
		}

		writeJSON(w, http.StatusCreated, pending)
	})
}
