package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/authenticating"
	"github.com/stensrud/agentic-dsta/internal/usecases/authenticating/mocks"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAndRoleMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func()
		wantStatus int
	}{
		{
			name:       "Healthcheck é público",
			path:       "/healthcheck",
			setup:      func() {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem header de autorização",
			path:       "/v1/runs/run-1",
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/runs/run-1",
			header: "Bearer expired",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Segredo ausente não é culpa do chamador",
			path:   "/v1/runs/run-1",
			header: "Bearer any",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("any").
					Return(nil, authenticating.NewAuthError(authenticating.ErrMissingSecret, apiErrors.ErrInternalServer, ""))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "Agente sem permissão de administrador",
			path:   "/v1/runs/run-1",
			header: "Bearer agent",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("agent").
					Return(&domain.Claims{ServiceName: "decision-agent", Role: domain.RoleAgent}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Administrador autorizado",
			path:   "/v1/runs/run-1",
			header: "Bearer admin",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("admin").
					Return(&domain.Claims{ServiceName: "ops", Role: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var handler http.Handler
			if tt.path == "/healthcheck" {
				handler = alice.New(LoggingMiddleware(), AuthMiddleware(mockAuth)).Then(okHandler())
			} else {
				handler = alice.New(LoggingMiddleware(), AuthMiddleware(mockAuth), AdminOnly()).Then(okHandler())
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
		})
	}
}

func TestLoggingMiddlewareKeepsCorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "correlation_id")

	chained := LoggingMiddleware()(handler)
	req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	req.Header.Set(CorrelationIDHeader, "corr-123")
	rec = httptest.NewRecorder()
	chained.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"correlation_id":"corr-123"`)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/runs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsWildcard(t *testing.T) {
	handler := Cors([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
	req.Header.Set("Origin", "http://qualquer.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, CorrelationIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

