package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stensrud/agentic-dsta/internal/usecases/account"
	"github.com/stensrud/agentic-dsta/internal/usecases/orchestrating"
	"github.com/stensrud/agentic-dsta/internal/usecases/runlogging"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var runErr *orchestrating.RunError
	if errors.As(err, &runErr) {
		apiErrors.WriteError(w, runErr.Code, runErr.Error(), detailsFor(runErr.CustomerID))
		return
	}

	var runLogErr *runlogging.RunLogError
	if errors.As(err, &runLogErr) {
		apiErrors.WriteError(w, runLogErr.Code, runLogErr.Error(), nil)
		return
	}

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), detailsFor(accountErr.CustomerID))
		return
	}

	switch {
	case errors.Is(err, account.ErrCustomerIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id é obrigatório", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsFor(customerID string) any {
	if customerID == "" {
		return nil
	}
	return map[string]any{"customer_id": customerID}
}
