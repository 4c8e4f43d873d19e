// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotFound  = errors.New("record not found")
	ErrRunSealed = errors.New("run already completed") // execução finalizada não aceita novas ações
)

const runLogTable = "agentic_run_logs"

var runMetadataColumns = []string{
	"id",
	"customer_id",
	"usecase",
	"triggered_by",
	"dry_run",
	"status",
	"started_at",
	"completed_at",
	"jsonb_array_length(actions)",
	"summary",
	"error",
}

//go:generate mockgen -source=run_log.go -destination=mocks/run_log.go -package=mocks

type RunLogRepository interface {
	Insert(ctx context.Context, run *domain.Run) error
	AppendAction(ctx context.Context, runID string, action domain.Action) error
	Complete(ctx context.Context, runID string, completion RunCompletion) (bool, error)
	ListByCustomer(ctx context.Context, customerID string, limit int, includeDryRuns bool) ([]domain.RunMetadata, error)
	GetByID(ctx context.Context, runID string) (*domain.Run, error)
}

// RunCompletion são os campos gravados ao finalizar uma execução. Actions nil preserva as ações
// já anexadas.
type RunCompletion struct {
	Status      domain.RunStatus
	Summary     *domain.RunSummary
	Error       *string
	Actions     []domain.Action
	CompletedAt time.Time
}

type runLogRepository struct {
	conn postgres.Queryer
}

func NewRunLogRepository(conn postgres.Queryer) RunLogRepository {
	return &runLogRepository{
		conn: conn,
	}
}

func (r *runLogRepository) Insert(ctx context.Context, run *domain.Run) error {
	query, args, err := insertRunQuery(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir execução: %w", err)
	}

	return nil
}

func insertRunQuery(run *domain.Run) (string, []any, error) {
	actions := run.Actions
	if actions == nil {
		actions = []domain.Action{}
	}

	payload, err := json.Marshal(actions)
	if err != nil {
		return "", nil, err
	}

	return squirrel.StatementBuilder.
		Insert(runLogTable).
		Columns("id", "customer_id", "usecase", "triggered_by", "dry_run", "status", "started_at", "actions").
		Values(run.ID, run.CustomerID, run.Usecase, run.TriggeredBy, run.DryRun, run.Status, run.StartedAt, string(payload)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// AppendAction concatena a ação ao array JSONB sem reescrever as anteriores.
// Execuções finalizadas são imutáveis: devolve ErrRunSealed.
func (r *runLogRepository) AppendAction(ctx context.Context, runID string, action domain.Action) error {
	query, args, err := appendActionQuery(runID, action)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao anexar ação: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return r.appendMissReason(ctx, runID)
	}

	return nil
}

// appendMissReason diferencia execução inexistente de execução já finalizada
func (r *runLogRepository) appendMissReason(ctx context.Context, runID string) error {
	query, args, err := runExistsQuery(runID)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("erro ao verificar execução: %w", err)
	}

	return ErrRunSealed
}

func runExistsQuery(runID string) (string, []any, error) {
	return squirrel.
		Select("1").
		From(runLogTable).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func appendActionQuery(runID string, action domain.Action) (string, []any, error) {
	payload, err := json.Marshal([]domain.Action{action})
	if err != nil {
		return "", nil, err
	}

	return squirrel.StatementBuilder.
		Update(runLogTable).
		Set("actions", squirrel.Expr("actions || ?::jsonb", string(payload))).
		Where(squirrel.Eq{"id": runID}).
		Where("completed_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Complete grava o estado final apenas se a execução ainda não foi finalizada.
// Devolve false quando nenhuma linha foi alterada.
func (r *runLogRepository) Complete(ctx context.Context, runID string, completion RunCompletion) (bool, error) {
	query, args, err := completeRunQuery(runID, completion)
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao finalizar execução: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func completeRunQuery(runID string, completion RunCompletion) (string, []any, error) {
	builder := squirrel.StatementBuilder.
		Update(runLogTable).
		Set("status", completion.Status).
		Set("completed_at", completion.CompletedAt).
		Set("error", completion.Error)

	if completion.Summary != nil {
		summary, err := json.Marshal(completion.Summary)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("summary", squirrel.Expr("?::jsonb", string(summary)))
	}

	if completion.Actions != nil {
		actions, err := json.Marshal(completion.Actions)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("actions", squirrel.Expr("?::jsonb", string(actions)))
	}

	return builder.
		Where(squirrel.Eq{"id": runID}).
		Where("completed_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *runLogRepository) ListByCustomer(ctx context.Context, customerID string, limit int, includeDryRuns bool) ([]domain.RunMetadata, error) {
	query, args, err := listRunsQuery(customerID, limit, includeDryRuns)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.RunMetadata, 0, limit)
	for rows.Next() {
		var (
			meta        domain.RunMetadata
			completedAt sql.NullTime
			summary     []byte
			runErr      sql.NullString
		)

		if err := rows.Scan(
			&meta.ID,
			&meta.CustomerID,
			&meta.Usecase,
			&meta.TriggeredBy,
			&meta.DryRun,
			&meta.Status,
			&meta.StartedAt,
			&completedAt,
			&meta.ActionCount,
			&summary,
			&runErr,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}

		if completedAt.Valid {
			meta.CompletedAt = &completedAt.Time
		}
		if runErr.Valid {
			meta.Error = &runErr.String
		}
		if len(summary) > 0 {
			meta.Summary = &domain.RunSummary{}
			if err := json.Unmarshal(summary, meta.Summary); err != nil {
				return nil, fmt.Errorf("erro ao decodificar resumo: %w", err)
			}
		}

		runs = append(runs, meta)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func listRunsQuery(customerID string, limit int, includeDryRuns bool) (string, []any, error) {
	builder := squirrel.
		Select(runMetadataColumns...).
		From(runLogTable).
		Where(squirrel.Eq{"customer_id": customerID})

	if !includeDryRuns {
		builder = builder.Where(squirrel.Eq{"dry_run": false})
	}

	return builder.
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *runLogRepository) GetByID(ctx context.Context, runID string) (*domain.Run, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "usecase", "triggered_by", "dry_run", "status", "started_at", "completed_at", "actions", "summary", "error").
		From(runLogTable).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		run         domain.Run
		completedAt sql.NullTime
		actions     []byte
		summary     []byte
		runErr      sql.NullString
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&run.ID,
		&run.CustomerID,
		&run.Usecase,
		&run.TriggeredBy,
		&run.DryRun,
		&run.Status,
		&run.StartedAt,
		&completedAt,
		&actions,
		&summary,
		&runErr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	if runErr.Valid {
		run.Error = &runErr.String
	}

	run.Actions = make([]domain.Action, 0)
	if len(actions) > 0 {
		if err := json.Unmarshal(actions, &run.Actions); err != nil {
			return nil, fmt.Errorf("erro ao decodificar ações: %w", err)
		}
	}
	if len(summary) > 0 {
		run.Summary = &domain.RunSummary{}
		if err := json.Unmarshal(summary, run.Summary); err != nil {
			return nil, fmt.Errorf("erro ao decodificar resumo: %w", err)
		}
	}

	return &run, nil
}
