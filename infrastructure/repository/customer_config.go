package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stensrud/agentic-dsta/infrastructure/database/postgres"
	"github.com/stensrud/agentic-dsta/internal/domain"
)

const (
	googleAdsConfigTable     = "google_ads_config"
	sa360ConfigTable         = "sa360_config"
	customerInstructionTable = "customer_instructions"
)

//go:generate mockgen -source=customer_config.go -destination=mocks/customer_config.go -package=mocks

// CustomerConfigRepository lê a configuração por cliente. Os documentos são guardados como JSONB.
type CustomerConfigRepository interface {
	GetGoogleAdsConfig(ctx context.Context, customerID string) (*domain.GoogleAdsConfig, error)
	GetSA360Config(ctx context.Context, customerID string) (*domain.SA360Config, error)
	GetInstruction(ctx context.Context, customerID string) (*domain.CustomerInstruction, error)
	ListCustomerIDs(ctx context.Context, usecase domain.Usecase) ([]string, error)
}

type customerConfigRepository struct {
	conn postgres.Queryer
}

func NewCustomerConfigRepository(conn postgres.Queryer) CustomerConfigRepository {
	return &customerConfigRepository{
		conn: conn,
	}
}

func configTable(usecase domain.Usecase) (string, error) {
	switch usecase {
	case domain.UsecaseGoogleAds:
		return googleAdsConfigTable, nil
	case domain.UsecaseSA360:
		return sa360ConfigTable, nil
	}
	return "", fmt.Errorf("usecase inválido: %q", usecase)
}

func (r *customerConfigRepository) getDocument(ctx context.Context, table, customerID string, out any) error {
	query, args, err := squirrel.
		Select("document").
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var document []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("erro ao buscar configuração em %s: %w", table, err)
	}

	if err := json.Unmarshal(document, out); err != nil {
		return fmt.Errorf("erro ao decodificar configuração de %s: %w", table, err)
	}

	return nil
}

func (r *customerConfigRepository) GetGoogleAdsConfig(ctx context.Context, customerID string) (*domain.GoogleAdsConfig, error) {
	var cfg domain.GoogleAdsConfig
	if err := r.getDocument(ctx, googleAdsConfigTable, customerID, &cfg); err != nil {
		return nil, err
	}
	if cfg.CustomerID == "" {
		cfg.CustomerID = customerID
	}
	return &cfg, nil
}

func (r *customerConfigRepository) GetSA360Config(ctx context.Context, customerID string) (*domain.SA360Config, error) {
	var cfg domain.SA360Config
	if err := r.getDocument(ctx, sa360ConfigTable, customerID, &cfg); err != nil {
		return nil, err
	}
	if cfg.CustomerID == "" {
		cfg.CustomerID = customerID
	}
	return &cfg, nil
}

func (r *customerConfigRepository) GetInstruction(ctx context.Context, customerID string) (*domain.CustomerInstruction, error) {
	query, args, err := squirrel.
		Select("customer_id", "instruction").
		From(customerInstructionTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var instruction domain.CustomerInstruction
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&instruction.CustomerID, &instruction.Instruction)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar instrução: %w", err)
	}

	return &instruction, nil
}

func (r *customerConfigRepository) ListCustomerIDs(ctx context.Context, usecase domain.Usecase) ([]string, error) {
	table, err := configTable(usecase)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("customer_id").
		From(table).
		OrderBy("customer_id ASC").
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
