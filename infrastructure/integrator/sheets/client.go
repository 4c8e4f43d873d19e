package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/internal/config"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Client acessa os valores da planilha de bulk upload
type Client interface {
	ReadValues(ctx context.Context, sheetID, sheetName string) ([][]string, error)
	UpdateCell(ctx context.Context, sheetID, sheetName, cell string, value any) error
	AppendRow(ctx context.Context, sheetID, sheetName string, values []any) error
}

type SheetsClient struct {
	service *sheetsapi.Service
}

// NewClient cria o cliente da API do Sheets autenticado com o TokenSource do Sheets
func NewClient(ctx context.Context, cfg *config.Config, resolver config.CredentialResolver) (*SheetsClient, error) {
	ts, err := resolver.TokenSource(ctx, config.APISheets)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: resolving credentials")
	}

	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if cfg.Sheets.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Sheets.Endpoint))
	}

	return NewClientWithOptions(ctx, opts...)
}

func NewClientWithOptions(ctx context.Context, opts ...option.ClientOption) (*SheetsClient, error) {
	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "sheets: creating service")
	}
	return &SheetsClient{service: service}, nil
}

// ReadValues lê a aba inteira. Linhas curtas não são completadas.
func (c *SheetsClient) ReadValues(ctx context.Context, sheetID, sheetName string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(sheetID, quoteSheetName(sheetName)).Context(ctx).Do()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"sheet_id":   sheetID,
			"sheet_name": sheetName,
			"error":      err.Error(),
		}).Error("sheets: falha ao ler a planilha")
		return nil, errors.Wrapf(err, "sheets: reading %s", sheetName)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}

	return values, nil
}

// UpdateCell grava um único valor na célula em notação A1 (ex.: D5)
func (c *SheetsClient) UpdateCell(ctx context.Context, sheetID, sheetName, cell string, value any) error {
	rng := fmt.Sprintf("%s!%s", quoteSheetName(sheetName), cell)
	body := &sheetsapi.ValueRange{Values: [][]any{{value}}}

	_, err := c.service.Spreadsheets.Values.Update(sheetID, rng, body).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "sheets: updating %s", rng)
	}

	logrus.WithFields(logrus.Fields{
		"sheet_id": sheetID,
		"range":    rng,
	}).Debug("sheets: célula atualizada")

	return nil
}

// AppendRow acrescenta uma linha no fim da aba
func (c *SheetsClient) AppendRow(ctx context.Context, sheetID, sheetName string, values []any) error {
	body := &sheetsapi.ValueRange{Values: [][]any{values}}

	_, err := c.service.Spreadsheets.Values.Append(sheetID, quoteSheetName(sheetName), body).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "sheets: appending to %s", sheetName)
	}

	return nil
}

// CellRef monta a referência A1 para a coluna (0-based) e a linha (1-based)
func CellRef(columnIndex, rowNumber int) string {
	return fmt.Sprintf("%s%d", ColumnLetter(columnIndex), rowNumber)
}

// ColumnLetter converte o índice 0-based da coluna para a letra da planilha (0 → A, 26 → AA)
func ColumnLetter(index int) string {
	letters := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = string(rune('A'+(n-1)%26)) + letters
	}
	return letters
}

func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
