package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Statements cria o schema. Todas as instruções são idempotentes.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS google_ads_config (
		customer_id TEXT PRIMARY KEY,
		document    JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sa360_config (
		customer_id TEXT PRIMARY KEY,
		document    JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS customer_instructions (
		customer_id TEXT PRIMARY KEY,
		instruction TEXT NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS agentic_run_logs (
		id           TEXT PRIMARY KEY,
		customer_id  TEXT NOT NULL,
		usecase      TEXT NOT NULL,
		triggered_by TEXT NOT NULL,
		dry_run      BOOLEAN NOT NULL DEFAULT FALSE,
		status       TEXT NOT NULL,
		started_at   TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		actions      JSONB NOT NULL DEFAULT '[]'::jsonb,
		summary      JSONB,
		error        TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS agentic_run_logs_customer_started_idx
		ON agentic_run_logs (customer_id ASC, started_at DESC)`,
	`CREATE TABLE IF NOT EXISTS pending_changes (
		id              TEXT PRIMARY KEY,
		customer_id     TEXT NOT NULL,
		usecase         TEXT NOT NULL,
		payload         JSONB NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		consumed_at     TIMESTAMPTZ,
		consumed_by_run TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS pending_changes_open_idx
		ON pending_changes (customer_id, usecase, created_at) WHERE consumed_at IS NULL`,
}

// Seed carrega configurações de clientes, uma entrada por customer_id
type Seed struct {
	GoogleAds    map[string]domain.GoogleAdsConfig `json:"google_ads_config"`
	SA360        map[string]domain.SA360Config     `json:"sa360_config"`
	Instructions map[string]string                 `json:"customer_instructions"`
}

func Apply(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range Statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar instrução %d do schema: %w", i, err)
			}
		}
		logrus.WithField("statements", len(Statements)).Info("Schema aplicado")
		return nil
	})
}

// ApplySeed grava a seed numa única transação, sobrescrevendo documentos existentes
func ApplySeed(ctx context.Context, conn postgres.Conn, seed Seed) error {
	queries, err := seedQueries(seed)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, q := range queries {
			if _, err := tx.ExecContext(ctx, q.query, q.args...); err != nil {
				return fmt.Errorf("erro ao gravar seed: %w", err)
			}
		}
		logrus.WithField("rows", len(queries)).Info("Seed aplicada")
		return nil
	})
}

type seedQuery struct {
	query string
	args  []any
}

func seedQueries(seed Seed) ([]seedQuery, error) {
	queries := make([]seedQuery, 0)

	documents := func(table string, docs map[string]any) error {
		for customerID, doc := range docs {
			payload, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("erro ao serializar %s de %s: %w", table, customerID, err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert(table).
				Columns("customer_id", "document").
				Values(customerID, squirrel.Expr("?::jsonb", string(payload))).
				Suffix("ON CONFLICT (customer_id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			queries = append(queries, seedQuery{query: query, args: args})
		}
		return nil
	}

	googleAds := make(map[string]any, len(seed.GoogleAds))
	for customerID, doc := range seed.GoogleAds {
		googleAds[customerID] = doc
	}
	if err := documents("google_ads_config", googleAds); err != nil {
		return nil, err
	}

	sa360 := make(map[string]any, len(seed.SA360))
	for customerID, doc := range seed.SA360 {
		sa360[customerID] = doc
	}
	if err := documents("sa360_config", sa360); err != nil {
		return nil, err
	}

	for customerID, instruction := range seed.Instructions {
		query, args, err := squirrel.StatementBuilder.
			Insert("customer_instructions").
			Columns("customer_id", "instruction").
			Values(customerID, instruction).
			Suffix("ON CONFLICT (customer_id) DO UPDATE SET instruction = EXCLUDED.instruction, updated_at = NOW()").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, err
		}
		queries = append(queries, seedQuery{query: query, args: args})
	}

	return queries, nil
}

// Unmarshal decodifica um arquivo de seed
func Unmarshal(raw []byte, seed *Seed) error {
	return json.Unmarshal(raw, seed)
}
