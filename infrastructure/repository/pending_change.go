package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

const pendingChangeTable = "pending_changes"

//go:generate mockgen -source=pending_change.go -destination=mocks/pending_change.go -package=mocks

// PendingChangeRepository guarda as mudanças enfileiradas para a próxima execução do cliente
type PendingChangeRepository interface {
	Enqueue(ctx context.Context, changes []domain.PendingChange) error
	ListPending(ctx context.Context, customerID string, usecase domain.Usecase) ([]domain.PendingChange, error)
	MarkConsumed(ctx context.Context, ids []string, runID string) error
}

type pendingChangeRepository struct {
	conn postgres.Queryer
}

func NewPendingChangeRepository(conn postgres.Queryer) PendingChangeRepository {
	return &pendingChangeRepository{
		conn: conn,
	}
}

func (r *pendingChangeRepository) Enqueue(ctx context.Context, changes []domain.PendingChange) error {
	if len(changes) == 0 {
		return nil
	}

	query, args, err := enqueueQuery(changes)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao enfileirar mudanças: %w", err)
	}

	return nil
}

func enqueueQuery(changes []domain.PendingChange) (string, []any, error) {
	builder := squirrel.StatementBuilder.
		Insert(pendingChangeTable).
		Columns("id", "customer_id", "usecase", "payload", "created_at")

	for _, change := range changes {
		payload, err := json.Marshal(change.Change)
		if err != nil {
			return "", nil, err
		}

		createdAt := change.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		builder = builder.Values(change.ID, change.CustomerID, change.Usecase, squirrel.Expr("?::jsonb", string(payload)), createdAt)
	}

	return builder.PlaceholderFormat(squirrel.Dollar).ToSql()
}

func (r *pendingChangeRepository) ListPending(ctx context.Context, customerID string, usecase domain.Usecase) ([]domain.PendingChange, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "usecase", "payload", "created_at").
		From(pendingChangeTable).
		Where(squirrel.Eq{"customer_id": customerID, "usecase": usecase}).
		Where("consumed_at IS NULL").
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	changes := make([]domain.PendingChange, 0)
	for rows.Next() {
		var (
			change  domain.PendingChange
			payload []byte
		)

		if err := rows.Scan(&change.ID, &change.CustomerID, &change.Usecase, &payload, &change.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear mudança: %w", err)
		}
		if err := json.Unmarshal(payload, &change.Change); err != nil {
			return nil, fmt.Errorf("erro ao decodificar mudança %s: %w", change.ID, err)
		}

		changes = append(changes, change)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return changes, nil
}

// MarkConsumed marca as mudanças como processadas pela execução runID
func (r *pendingChangeRepository) MarkConsumed(ctx context.Context, ids []string, runID string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := squirrel.StatementBuilder.
		Update(pendingChangeTable).
		Set("consumed_at", squirrel.Expr("NOW()")).
		Set("consumed_by_run", runID).
		Where(squirrel.Eq{"id": ids}).
		Where("consumed_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao marcar mudanças como consumidas: %w", err)
	}

	return nil
}
