package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/internal/config"
)

// Conn é a conexão usada pelos repositórios e pelas migrações
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

type opener func(driver, dsn string) (*sql.DB, error)

// NewConnection abre o pool e espera o banco responder, com até cfg.ConnectAttempts tentativas
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	return connect(ctx, cfg, sql.Open)
}

func connect(ctx context.Context, cfg config.Database, open opener) (*Connection, error) {
	db, err := open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir pool do postgres: %w", err)
	}

	configurePool(db, cfg)

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err = db.PingContext(ctx)
		if err == nil {
			return &Connection{DB: db}, nil
		}
		if attempt >= attempts {
			break
		}

		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"of":      attempts,
			"error":   err.Error(),
		}).Warn("postgres indisponível, tentando novamente")

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.ConnectBackoff):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("postgres indisponível após %d tentativas: %w", attempts, err)
}

func configurePool(db *sql.DB, cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn numa transação. Erro ou panic em fn desfazem tudo.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", commitErr)
	}
	return nil
}
