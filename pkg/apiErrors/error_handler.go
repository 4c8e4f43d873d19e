package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Papel sem permissão para a rota

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidAppName      = "VAL_004" // app_name diferente do agente configurado
	ErrInvalidUsecase      = "VAL_005" // Caso de uso desconhecido
	ErrInvalidChange       = "VAL_006" // Mudança com tipo ou campos inválidos

	// Erros de execução
	ErrRunNotFound      = "RUN_001" // Execução inexistente
	ErrRunInProgress    = "RUN_002" // Já existe execução em andamento para o cliente
	ErrCustomerNotFound = "RUN_003" // Cliente sem configuração
	ErrUnknownCronJob   = "RUN_004" // Tipo de cron desconhecido
	ErrSyncInProgress   = "RUN_005" // Sincronização agendada em andamento
	ErrRunCompleted     = "RUN_006" // Execução já finalizada

	// Erros de roteamento
	ErrNotFound         = "GEN_001" // Rota inexistente
	ErrMethodNotAllowed = "GEN_002" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidAppName:        http.StatusBadRequest,
	ErrInvalidUsecase:        http.StatusBadRequest,
	ErrInvalidChange:         http.StatusBadRequest,
	ErrRunNotFound:           http.StatusNotFound,
	ErrRunInProgress:         http.StatusConflict,
	ErrCustomerNotFound:      http.StatusNotFound,
	ErrUnknownCronJob:        http.StatusBadRequest,
	ErrSyncInProgress:        http.StatusConflict,
	ErrRunCompleted:          http.StatusConflict,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, ou 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
