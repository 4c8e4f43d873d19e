package reconciling

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360"
	"github.com/stensrud/agentic-dsta/infrastructure/integrator/sheets"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stensrud/agentic-dsta/internal/usecases/executing"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
	"github.com/stensrud/agentic-dsta/pkg/metrics"
	"github.com/stensrud/agentic-dsta/pkg/utils"
)

const (
	ToolSheetUpdate       = "sa360_sheet_update"
	ToolNegativeGeoInsert = "sa360_negative_geo_insert"

	simulatedReferencePrefix = "simulated/"
)

// Request descreve uma passagem de reconciliação sobre a planilha de um cliente
type Request struct {
	CustomerID      string
	LoginCustomerID string
	SheetID         string
	SheetName       string
	Changes         []domain.Change
	DryRun          bool
}

// Reconciler encena mudanças do SA360 na planilha de bulk upload depois de comparar
// as colunas validadas com o relatório do SA360
type Reconciler struct {
	reporter sa360.Reporter
	sheets   sheets.Client
}

func NewReconciler(reporter sa360.Reporter, client sheets.Client) *Reconciler {
	return &Reconciler{
		reporter: reporter,
		sheets:   client,
	}
}

// pass guarda o estado de uma única chamada a Reconcile
type pass struct {
	req     Request
	sheet   sheet
	report  map[string]domain.SheetRow
	drift   map[int][]string
	actions *auditing.ActionLogger
	result  *domain.ReconciliationReport
}

// Reconcile processa cada mudança em ordem e registra uma Action por mudança.
// Falhas ao buscar o relatório ou ler a planilha interrompem a passagem antes de qualquer escrita.
func (r *Reconciler) Reconcile(ctx context.Context, req Request, actions *auditing.ActionLogger) (*domain.ReconciliationReport, error) {
	if req.SheetID == "" || req.SheetName == "" {
		return nil, NewReconcileError(ErrInvalidTarget, apiErrors.ErrMissingRequiredData, req.CustomerID, "sheet_id e sheet_name são obrigatórios")
	}

	reportRows, err := r.reporter.ListCampaigns(ctx, req.CustomerID, req.LoginCustomerID)
	if err != nil {
		return nil, NewReconcileError(ErrFetchReport, apiErrors.ErrExternalService, req.CustomerID, err.Error())
	}

	values, err := r.sheets.ReadValues(ctx, req.SheetID, req.SheetName)
	if err != nil {
		return nil, NewReconcileError(ErrReadSheet, apiErrors.ErrExternalService, req.CustomerID, err.Error())
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, NewReconcileError(ErrEmptySheet, apiErrors.ErrInvalidRequest, req.CustomerID, req.SheetName)
	}

	p := &pass{
		req:     req,
		sheet:   parseSheet(values),
		report:  make(map[string]domain.SheetRow, len(reportRows)),
		drift:   make(map[int][]string),
		actions: actions,
		result: &domain.ReconciliationReport{
			Outcomes: make([]domain.RowOutcome, 0, len(req.Changes)),
			Blocked:  make([]domain.BlockedRow, 0),
		},
	}

	if missing := p.sheet.header.missing(domain.ColumnCampaignID); len(missing) > 0 {
		return nil, NewReconcileError(ErrMissingColumn, apiErrors.ErrInvalidRequest, req.CustomerID, strings.Join(missing, ", "))
	}

	for _, row := range reportRows {
		p.report[row.CampaignID] = row
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": req.CustomerID,
		"sheet_id":    req.SheetID,
		"sheet_rows":  len(p.sheet.rows),
		"sa360_rows":  len(reportRows),
		"changes":     len(req.Changes),
		"dry_run":     req.DryRun,
	}).Info("reconciler: iniciando reconciliação da planilha")

	for _, change := range req.Changes {
		r.apply(ctx, p, change)
	}

	return p.result, nil
}

func (r *Reconciler) apply(ctx context.Context, p *pass, change domain.Change) {
	c, err := p.describe(change)
	if err != nil {
		p.invalid(c, err.Error())
		return
	}

	row, found := p.sheet.campaignRow(c.campaignID)
	if !found {
		p.block(c, 0, "campanha não encontrada na planilha", nil)
		return
	}

	if columns := p.driftColumns(row); len(columns) > 0 {
		p.block(c, row.RowNumber, "divergência com o SA360 nas colunas: "+strings.Join(columns, ", "), columns)
		return
	}

	if c.negative {
		r.insert(ctx, p, c, row)
		return
	}
	r.update(ctx, p, c, row)
}

func (r *Reconciler) update(ctx context.Context, p *pass, c sheetCall, row domain.SheetRow) {
	columnIndex, ok := p.sheet.header.index(c.column)
	if !ok {
		p.block(c, row.RowNumber, "planilha sem a coluna "+c.column, []string{c.column})
		return
	}

	value := c.value
	if c.column == domain.ColumnStatus {
		value = sheetStatusValue(row.Status, domain.CampaignStatus(fmt.Sprint(c.value)))
		c.params["value"] = value
	}

	cell := sheets.CellRef(columnIndex, row.RowNumber)
	reference := fmt.Sprintf("%s!%s", p.req.SheetName, cell)

	if !p.req.DryRun {
		if err := r.sheets.UpdateCell(ctx, p.req.SheetID, p.req.SheetName, cell, value); err != nil {
			p.fail(c, row.RowNumber, err)
			return
		}
	}

	p.succeed(c, row.RowNumber, domain.RowUpdated, reference)
}

func (r *Reconciler) insert(ctx context.Context, p *pass, c sheetCall, row domain.SheetRow) {
	required := []string{domain.ColumnAssociatedCampaignID, domain.ColumnAction, domain.ColumnRowType}
	if missing := p.sheet.header.missing(required...); len(missing) > 0 {
		p.block(c, row.RowNumber, "planilha sem as colunas "+strings.Join(missing, ", "), missing)
		return
	}

	if !p.req.DryRun {
		if err := r.sheets.AppendRow(ctx, p.req.SheetID, p.req.SheetName, p.sheet.negativeGeoRow(row, fmt.Sprint(c.value))); err != nil {
			p.fail(c, row.RowNumber, err)
			return
		}
	}

	p.succeed(c, 0, domain.RowInserted, p.req.SheetName+"!append")
}

// driftColumns compara uma vez por linha as colunas validadas com o relatório do SA360
func (p *pass) driftColumns(row domain.SheetRow) []string {
	if columns, cached := p.drift[row.RowNumber]; cached {
		return columns
	}

	columns := make([]string, 0)
	reportRow, found := p.report[row.CampaignID]
	if !found {
		columns = append(columns, domain.ColumnCampaignID)
	} else {
		for _, column := range domain.ValidatedColumns {
			if _, present := p.sheet.header.index(column); !present {
				columns = append(columns, column)
				continue
			}
			if !columnMatches(column, row.ValidatedValue(column), reportRow.ValidatedValue(column)) {
				columns = append(columns, column)
			}
		}
	}

	p.drift[row.RowNumber] = columns
	return columns
}

// sheetCall é a descrição comum das ações reais e simuladas da planilha
type sheetCall struct {
	tool        string
	campaignID  string
	column      string
	value       any
	negative    bool
	params      map[string]any
	description string
}

func (p *pass) describe(change domain.Change) (sheetCall, error) {
	c := sheetCall{
		tool:       ToolSheetUpdate,
		campaignID: change.Target(),
		params: map[string]any{
			"customer_id": p.req.CustomerID,
			"campaign_id": change.Target(),
			"sheet_id":    p.req.SheetID,
			"sheet_name":  p.req.SheetName,
		},
	}

	switch ch := change.(type) {
	case domain.CampaignStatusChange:
		c.column, c.value = domain.ColumnStatus, string(ch.Status)
		c.description = fmt.Sprintf("Alterar status da campanha SA360 %s para %s na planilha", ch.CampaignID, ch.Status)
		if !ch.Status.IsSettable() {
			return c, fmt.Errorf("status inválido: %q", ch.Status)
		}
	case domain.BudgetChange:
		c.column, c.value = domain.ColumnBudget, utils.MicrosToCurrency(ch.BudgetMicros)
		c.description = fmt.Sprintf("Alterar orçamento da campanha SA360 %s para %.2f na planilha", ch.CampaignID, c.value)
		if ch.BudgetMicros <= 0 {
			return c, fmt.Errorf("orçamento deve ser positivo: %d", ch.BudgetMicros)
		}
	case domain.GeoTargetChange:
		location := ch.LocationName
		if location == "" {
			location = strings.Join(ch.LocationIDs, ",")
		}
		c.column, c.value, c.negative = domain.ColumnLocation, location, ch.Negative
		if ch.Negative {
			c.tool = ToolNegativeGeoInsert
			c.description = fmt.Sprintf("Excluir localização %s da campanha SA360 %s (nova linha na planilha)", location, ch.CampaignID)
		} else {
			c.description = fmt.Sprintf("Alterar localização da campanha SA360 %s para %s na planilha", ch.CampaignID, location)
		}
		if location == "" {
			return c, fmt.Errorf("localização ausente")
		}
	default:
		c.description = fmt.Sprintf("Mudança %s não suportada na planilha do SA360", change.Kind())
		c.params["change_type"] = string(change.Kind())
		return c, fmt.Errorf("tipo de mudança %q não suportado no SA360", change.Kind())
	}

	c.params["column"] = c.column
	c.params["value"] = c.value
	c.params["negative"] = c.negative
	return c, nil
}

func (p *pass) action(c sheetCall) domain.Action {
	return domain.Action{
		Tool:        c.tool,
		Params:      c.params,
		Description: c.description,
		Simulated:   p.req.DryRun,
	}
}

func (p *pass) succeed(c sheetCall, rowNumber int, outcome domain.RowOutcomeKind, reference string) {
	action := p.action(c)
	if p.req.DryRun {
		reference = simulatedReferencePrefix + c.campaignID
	}
	// a mensagem não depende do modo; só Simulated e ResourceReference diferem no dry run
	action.Result = domain.ActionResult{Success: true, ResourceReference: reference, Message: successMessage(outcome)}

	p.record(action, domain.RowOutcome{CampaignID: c.campaignID, RowNumber: rowNumber, Outcome: outcome, Column: c.column})
}

func (p *pass) block(c sheetCall, rowNumber int, reason string, columns []string) {
	logrus.WithFields(logrus.Fields{
		"customer_id": p.req.CustomerID,
		"campaign_id": c.campaignID,
		"row":         rowNumber,
		"reason":      reason,
	}).Warn("reconciler: linha bloqueada")

	action := p.action(c)
	action.Result = domain.ActionResult{
		Error: &domain.ActionError{Kind: domain.ActionErrorReconciliation, Message: reason},
	}

	p.result.Blocked = append(p.result.Blocked, domain.BlockedRow{
		CampaignID: c.campaignID,
		RowNumber:  rowNumber,
		Reason:     reason,
		Columns:    columns,
	})
	p.record(action, domain.RowOutcome{CampaignID: c.campaignID, RowNumber: rowNumber, Outcome: domain.RowBlocked, Column: c.column, Reason: reason})
}

func (p *pass) invalid(c sheetCall, reason string) {
	action := p.action(c)
	action.Result = domain.ActionResult{
		Error: &domain.ActionError{Kind: domain.ActionErrorInvalidArguments, Message: reason},
	}

	p.result.Blocked = append(p.result.Blocked, domain.BlockedRow{CampaignID: c.campaignID, Reason: reason})
	p.record(action, domain.RowOutcome{CampaignID: c.campaignID, Outcome: domain.RowBlocked, Column: c.column, Reason: reason})
}

func (p *pass) fail(c sheetCall, rowNumber int, err error) {
	logrus.WithFields(logrus.Fields{
		"customer_id": p.req.CustomerID,
		"campaign_id": c.campaignID,
		"tool":        c.tool,
		"error":       err.Error(),
	}).Error("reconciler: falha ao escrever na planilha")

	action := p.action(c)
	action.Result = domain.ActionResult{Error: executing.ExternalError(err)}

	p.record(action, domain.RowOutcome{CampaignID: c.campaignID, RowNumber: rowNumber, Outcome: domain.RowFailed, Column: c.column, Reason: err.Error()})
}

func (p *pass) record(action domain.Action, outcome domain.RowOutcome) {
	recorded := p.actions.Append(action)
	p.result.Outcomes = append(p.result.Outcomes, outcome)

	metrics.SheetRowCount.WithLabelValues(string(outcome.Outcome)).Inc()
	metrics.MutationCount.
		WithLabelValues(recorded.Tool, metrics.Outcome(recorded.Succeeded(), recorded.Rejected()), strconv.FormatBool(recorded.Simulated)).
		Inc()
}

func successMessage(outcome domain.RowOutcomeKind) string {
	if outcome == domain.RowInserted {
		return "linha inserida na planilha"
	}
	return "célula atualizada na planilha"
}
