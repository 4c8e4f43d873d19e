package adsdomain

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Type      string          `json:"@type"`
	Errors    []FailureDetail `json:"errors,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

type FailureDetail struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// APIError é o erro do Google Ads repassado sem reinterpretação
type APIError struct {
	HTTPStatus int
	Code       int
	Status     string
	Message    string
	Failures   []FailureDetail
	RequestID  string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "google ads: %s (%d): %s", e.Status, e.Code, e.Message)
	for _, failure := range e.Failures {
		b.WriteString(" [")
		b.WriteString(failure.codeString())
		if failure.Message != "" {
			b.WriteString(": ")
			b.WriteString(failure.Message)
		}
		b.WriteString("]")
	}
	return b.String()
}

// ErrorCode devolve o primeiro código específico (ex.: campaignError=...) ou o status HTTP da API
func (e *APIError) ErrorCode() string {
	if len(e.Failures) > 0 {
		return e.Failures[0].codeString()
	}
	return e.Status
}

// IsAuthError indica falhas de credencial, que não adianta repetir
func (e *APIError) IsAuthError() bool {
	return e.HTTPStatus == 401 || e.Status == "UNAUTHENTICATED" || e.Status == "PERMISSION_DENIED"
}

func (f FailureDetail) codeString() string {
	keys := make([]string, 0, len(f.ErrorCode))
	for key := range f.ErrorCode {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+f.ErrorCode[key])
	}
	return strings.Join(parts, ",")
}

// NewAPIError monta o APIError a partir do corpo de erro decodificado
func NewAPIError(httpStatus int, resp ErrorResponse) *APIError {
	apiErr := &APIError{
		HTTPStatus: httpStatus,
		Code:       resp.Error.Code,
		Status:     resp.Error.Status,
		Message:    resp.Error.Message,
	}
	for _, detail := range resp.Error.Details {
		apiErr.Failures = append(apiErr.Failures, detail.Errors...)
		if detail.RequestID != "" {
			apiErr.RequestID = detail.RequestID
		}
	}
	return apiErr
}
