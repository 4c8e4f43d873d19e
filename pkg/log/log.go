package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields = logrus.Fields

type contextKey string

// CorrelationIDKey é a chave do ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField = "correlation_id"
	runIDField         = "run_id"
)

// contextKey separado para o run_id, propagado para os logs das ações
const runIDKey contextKey = "run_id"

// L é a entrada base usada pelo restante do pacote
var L = logrus.NewEntry(logrus.StandardLogger())

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Configure ajusta formato e nível globais. Em produção os logs saem em JSON.
func Configure(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// WithCorrelationID adiciona um ID de correlação ao contexto, reaproveitando um já existente
func WithCorrelationID(ctx context.Context, existing string) (context.Context, string) {
	correlationID := existing
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// ForContext cria uma entrada com os identificadores presentes no contexto
func ForContext(ctx context.Context) *logrus.Entry {
	entry := L
	if ctx == nil {
		return entry
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok && correlationID != "" {
		entry = entry.WithField(correlationIDField, correlationID)
	}
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		entry = entry.WithField(runIDField, runID)
	}

	return entry
}
