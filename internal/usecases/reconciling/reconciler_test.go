package reconciling

import (
	"context"
	"errors"
	"testing"

	sa360mocks "github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/mocks"
	sheetsmocks "github.com/stensrud/agentic-dsta/infrastructure/integrator/sheets/mocks"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/internal/usecases/auditing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sheetHeader = []string{
	"Campaign ID", "Campaign", "Status", "Campaign type", "Budget", "Bid strategy type", "End date",
	"Customer ID", "Location", "EU political ads", "Associated Campaign ID", "Action", "Row Type",
}

func sheetValues(rows ...[]string) [][]string {
	return append([][]string{sheetHeader}, rows...)
}

func brandRow(status, budget string) []string {
	return []string{"111", "Brand", status, "Search", budget, "Manual CPC", "", "123", "New York", "No", "", "", ""}
}

func brandReport() []domain.SheetRow {
	return []domain.SheetRow{{
		CampaignID:      "111",
		CampaignName:    "Brand",
		Status:          "ENABLED",
		CampaignType:    "SEARCH",
		Budget:          "50.00",
		BidStrategyType: "MANUAL_CPC",
		EndDate:         "2037-12-30",
		CustomerID:      "123",
	}}
}

func TestReconciler_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockReporter := sa360mocks.NewMockReporter(ctrl)
	mockSheets := sheetsmocks.NewMockClient(ctrl)
	reconciler := NewReconciler(mockReporter, mockSheets)

	baseRequest := Request{CustomerID: "123", LoginCustomerID: "999", SheetID: "sheet-1", SheetName: "Plan"}

	tests := []struct {
		name     string
		values   [][]string
		changes  []domain.Change
		dryRun   bool
		setup    func()
		validate func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action)
	}{
		{
			name:    "Status atualizado na célula respeitando o estilo da planilha",
			values:  sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused}},
			setup: func() {
				mockSheets.EXPECT().UpdateCell(ctx, "sheet-1", "Plan", "C2", "Paused").Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Outcomes, 1)
				assert.Equal(t, domain.RowUpdated, report.Outcomes[0].Outcome)
				assert.Equal(t, 2, report.Outcomes[0].RowNumber)
				assert.Empty(t, report.Blocked)

				require.Len(t, actions, 1)
				assert.Equal(t, ToolSheetUpdate, actions[0].Tool)
				assert.True(t, actions[0].Result.Success)
				assert.Equal(t, "Plan!C2", actions[0].Result.ResourceReference)
				assert.Equal(t, "célula atualizada na planilha", actions[0].Result.Message)
				assert.False(t, actions[0].Simulated)
			},
		},
		{
			name:    "Orçamento em micros na planilha equivale ao valor em moeda do SA360",
			values:  sheetValues(brandRow("ENABLED", "50000000")),
			changes: []domain.Change{domain.BudgetChange{CampaignID: "111", BudgetMicros: 75_000_000}},
			setup: func() {
				mockSheets.EXPECT().UpdateCell(ctx, "sheet-1", "Plan", "E2", 75.0).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Outcomes, 1)
				assert.Equal(t, domain.RowUpdated, report.Outcomes[0].Outcome)
				assert.Equal(t, domain.ColumnBudget, report.Outcomes[0].Column)
			},
		},
		{
			name:    "Divergência bloqueia a linha e lista as colunas",
			values:  sheetValues(brandRow("Paused", "40")),
			changes: []domain.Change{domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusEnabled}},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Blocked, 1)
				assert.Equal(t, []string{domain.ColumnStatus, domain.ColumnBudget}, report.Blocked[0].Columns)
				assert.Contains(t, report.Blocked[0].Reason, "Status, Budget")
				assert.Equal(t, domain.RowBlocked, report.Outcomes[0].Outcome)

				require.Len(t, actions, 1)
				require.NotNil(t, actions[0].Result.Error)
				assert.Equal(t, domain.ActionErrorReconciliation, actions[0].Result.Error.Kind)
				assert.True(t, actions[0].Rejected())
			},
		},
		{
			name:   "Exclusão de localização acrescenta nova linha",
			values: sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{
				domain.GeoTargetChange{CampaignID: "111", LocationName: "Boston", Negative: true},
			},
			setup: func() {
				mockSheets.EXPECT().AppendRow(ctx, "sheet-1", "Plan", []any{
					"", "Brand", "", "", "", "", "", "123", "Boston", "No", "111", "deactivate", "excluded location",
				}).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Outcomes, 1)
				assert.Equal(t, domain.RowInserted, report.Outcomes[0].Outcome)
				assert.Equal(t, ToolNegativeGeoInsert, actions[0].Tool)
				assert.True(t, actions[0].Result.Success)
			},
		},
		{
			name:   "Exclusões repetidas não são deduplicadas",
			values: sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{
				domain.GeoTargetChange{CampaignID: "111", LocationName: "Boston", Negative: true},
				domain.GeoTargetChange{CampaignID: "111", LocationName: "Boston", Negative: true},
			},
			setup: func() {
				mockSheets.EXPECT().AppendRow(ctx, "sheet-1", "Plan", gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Outcomes, 2)
				assert.Len(t, actions, 2)
			},
		},
		{
			name:    "Dry run não escreve e marca as ações como simuladas",
			values:  sheetValues(brandRow("Active", "50")),
			dryRun:  true,
			changes: []domain.Change{domain.GeoTargetChange{CampaignID: "111", LocationName: "Chicago"}},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, actions, 1)
				assert.True(t, actions[0].Simulated)
				assert.True(t, actions[0].Result.Success)
				assert.Equal(t, "simulated/111", actions[0].Result.ResourceReference)
				assert.Equal(t, "célula atualizada na planilha", actions[0].Result.Message)
				assert.Equal(t, domain.RowUpdated, report.Outcomes[0].Outcome)
			},
		},
		{
			name:    "Campanha ausente da planilha",
			values:  sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{domain.CampaignStatusChange{CampaignID: "222", Status: domain.CampaignStatusPaused}},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Blocked, 1)
				assert.Equal(t, "222", report.Blocked[0].CampaignID)
				assert.Equal(t, domain.ActionErrorReconciliation, actions[0].Result.Error.Kind)
			},
		},
		{
			name:    "Mudança de lance não é suportada no SA360",
			values:  sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{domain.BiddingStrategyChange{CampaignID: "111", Scheme: domain.BiddingScheme{Kind: domain.SchemeManualCPC}}},
			setup:   func() {},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, actions, 1)
				assert.Equal(t, domain.ActionErrorInvalidArguments, actions[0].Result.Error.Kind)
				assert.Equal(t, domain.RowBlocked, report.Outcomes[0].Outcome)
			},
		},
		{
			name:    "Falha de escrita é registrada e a passagem continua",
			values:  sheetValues(brandRow("Active", "50")),
			changes: []domain.Change{
				domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused},
				domain.BudgetChange{CampaignID: "111", BudgetMicros: 60_000_000},
			},
			setup: func() {
				mockSheets.EXPECT().UpdateCell(ctx, "sheet-1", "Plan", "C2", "Paused").Return(errors.New("quota exceeded"))
				mockSheets.EXPECT().UpdateCell(ctx, "sheet-1", "Plan", "E2", 60.0).Return(nil)
			},
			validate: func(t *testing.T, report *domain.ReconciliationReport, actions []domain.Action) {
				require.Len(t, report.Outcomes, 2)
				assert.Equal(t, domain.RowFailed, report.Outcomes[0].Outcome)
				assert.Equal(t, domain.RowUpdated, report.Outcomes[1].Outcome)
				assert.Equal(t, domain.ActionErrorExternalAPI, actions[0].Result.Error.Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReporter.EXPECT().ListCampaigns(ctx, "123", "999").Return(brandReport(), nil)
			mockSheets.EXPECT().ReadValues(ctx, "sheet-1", "Plan").Return(tt.values, nil)
			tt.setup()

			req := baseRequest
			req.Changes = tt.changes
			req.DryRun = tt.dryRun

			actions := auditing.NewActionLogger()
			report, err := reconciler.Reconcile(ctx, req, actions)
			require.NoError(t, err)
			tt.validate(t, report, actions.Snapshot())
		})
	}
}

func TestReconciler_FetchFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockReporter := sa360mocks.NewMockReporter(ctrl)
	mockSheets := sheetsmocks.NewMockClient(ctrl)
	reconciler := NewReconciler(mockReporter, mockSheets)

	req := Request{
		CustomerID: "123",
		SheetID:    "sheet-1",
		SheetName:  "Plan",
		Changes:    []domain.Change{domain.CampaignStatusChange{CampaignID: "111", Status: domain.CampaignStatusPaused}},
	}

	mockReporter.EXPECT().ListCampaigns(ctx, "123", "").Return(nil, errors.New("permission denied"))

	actions := auditing.NewActionLogger()
	report, err := reconciler.Reconcile(ctx, req, actions)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrFetchReport)
	assert.Zero(t, actions.Count())

	mockReporter.EXPECT().ListCampaigns(ctx, "123", "").Return(brandReport(), nil)
	mockSheets.EXPECT().ReadValues(ctx, "sheet-1", "Plan").Return([][]string{}, nil)

	_, err = reconciler.Reconcile(ctx, req, actions)
	assert.ErrorIs(t, err, ErrEmptySheet)
	assert.Zero(t, actions.Count())
}

func TestColumnMatches(t *testing.T) {
	tests := []struct {
		column string
		sheet  string
		report string
		want   bool
	}{
		{domain.ColumnStatus, "Active", "ENABLED", true},
		{domain.ColumnStatus, "paused", "PAUSED", true},
		{domain.ColumnStatus, "Paused", "ENABLED", false},
		{domain.ColumnCampaignType, "Performance Max", "PERFORMANCE_MAX", true},
		{domain.ColumnBidStrategyType, "manual cpc", "MANUAL_CPC", true},
		{domain.ColumnBudget, "$1,250.00", "1250.00", true},
		{domain.ColumnBudget, "1250000000", "1250.00", true},
		{domain.ColumnBudget, "1250.01", "1250.00", false},
		{domain.ColumnEndDate, "12/30/2037", "2037-12-30", true},
		{domain.ColumnEndDate, "", "2037-12-30", true},
		{domain.ColumnEndDate, "2025/06/01", "2025-06-01", true},
		{domain.ColumnCampaignName, " Brand ", "Brand", true},
		{domain.ColumnCampaignName, "brand", "Brand", false},
	}

	for _, tt := range tests {
		t.Run(tt.column+"/"+tt.sheet, func(t *testing.T) {
			assert.Equal(t, tt.want, columnMatches(tt.column, tt.sheet, tt.report))
		})
	}
}
