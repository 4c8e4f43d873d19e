package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unreachableDSN = "postgres://agent@127.0.0.1:1/agentic_dsta?sslmode=disable&connect_timeout=1"

func TestConnect(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Database
		ctx      func() (context.Context, context.CancelFunc)
		open     opener
		validate func(t *testing.T, conn *Connection, err error)
	}{
		{
			name: "Falha ao abrir o pool",
			cfg:  config.Database{DSN: unreachableDSN},
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			open: func(string, string) (*sql.DB, error) { return nil, errors.New("driver ausente") },
			validate: func(t *testing.T, conn *Connection, err error) {
				require.Error(t, err)
				assert.Nil(t, conn)
				assert.Contains(t, err.Error(), "driver ausente")
			},
		},
		{
			name: "Desiste depois de esgotar as tentativas",
			cfg:  config.Database{DSN: unreachableDSN, ConnectAttempts: 2, ConnectBackoff: time.Millisecond},
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			open: sql.Open,
			validate: func(t *testing.T, conn *Connection, err error) {
				require.Error(t, err)
				assert.Nil(t, conn)
				assert.Contains(t, err.Error(), "após 2 tentativas")
			},
		},
		{
			name: "Contexto cancelado interrompe a espera",
			cfg:  config.Database{DSN: unreachableDSN, ConnectAttempts: 10, ConnectBackoff: time.Hour},
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 200*time.Millisecond)
			},
			open: sql.Open,
			validate: func(t *testing.T, conn *Connection, err error) {
				require.Error(t, err)
				assert.Nil(t, conn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			conn, err := connect(ctx, tt.cfg, tt.open)
			tt.validate(t, conn, err)
		})
	}
}

func TestConfigurePool(t *testing.T) {
	db, err := sql.Open("postgres", unreachableDSN)
	require.NoError(t, err)
	defer db.Close()

	configurePool(db, config.Database{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})
	assert.Equal(t, 7, db.Stats().MaxOpenConnections)
}
