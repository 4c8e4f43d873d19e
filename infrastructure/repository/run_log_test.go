package repository

import (
	"testing"
	"time"

	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendActionQuery(t *testing.T) {
	action := domain.Action{
		Timestamp:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Tool:        "budget_change",
		Params:      map[string]any{"campaign_id": "111"},
		Description: "Alterar orçamento",
		Result:      domain.ActionResult{Success: true},
	}

	query, args, err := appendActionQuery("run-1", action)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE agentic_run_logs SET actions = actions || $1::jsonb WHERE id = $2 AND completed_at IS NULL", query)
	require.Len(t, args, 2)
	assert.Equal(t, "run-1", args[1])

	payload, ok := args[0].(string)
	require.True(t, ok)
	assert.True(t, len(payload) > 2 && payload[0] == '[' && payload[len(payload)-1] == ']')
	assert.Contains(t, payload, `"tool":"budget_change"`)
}

func TestRunExistsQuery(t *testing.T) {
	query, args, err := runExistsQuery("run-1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1 FROM agentic_run_logs WHERE id = $1", query)
	assert.Equal(t, []any{"run-1"}, args)
}

func TestCompleteRunQuery(t *testing.T) {
	completedAt := time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC)

	tests := []struct {
		name       string
		completion RunCompletion
		wantQuery  string
		wantArgs   int
	}{
		{
			name: "Somente status e resumo preserva as ações anexadas",
			completion: RunCompletion{
				Status:      domain.RunStatusSuccess,
				Summary:     &domain.RunSummary{Total: 1, Succeeded: 1},
				CompletedAt: completedAt,
			},
			wantQuery: "UPDATE agentic_run_logs SET status = $1, completed_at = $2, error = $3, summary = $4::jsonb WHERE id = $5 AND completed_at IS NULL",
			wantArgs:  5,
		},
		{
			name: "Com lote de ações substitui o array",
			completion: RunCompletion{
				Status:      domain.RunStatusCompletedWithLoggingErrors,
				Summary:     &domain.RunSummary{Total: 2},
				Actions:     []domain.Action{{Tool: "a"}, {Tool: "b"}},
				CompletedAt: completedAt,
			},
			wantQuery: "UPDATE agentic_run_logs SET status = $1, completed_at = $2, error = $3, summary = $4::jsonb, actions = $5::jsonb WHERE id = $6 AND completed_at IS NULL",
			wantArgs:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := completeRunQuery("run-1", tt.completion)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, "run-1", args[len(args)-1])
		})
	}
}

func TestListRunsQuery(t *testing.T) {
	query, args, err := listRunsQuery("123", 20, false)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE customer_id = $1 AND dry_run = $2 ORDER BY started_at DESC LIMIT 20")
	assert.Equal(t, []any{"123", false}, args)

	query, args, err = listRunsQuery("123", 5, true)
	require.NoError(t, err)
	assert.NotContains(t, query, "dry_run =")
	assert.Contains(t, query, "LIMIT 5")
	assert.Equal(t, []any{"123"}, args)
}

func TestInsertRunQuery(t *testing.T) {
	run := &domain.Run{
		ID:          "run-1",
		CustomerID:  "123",
		Usecase:     domain.UsecaseGoogleAds,
		TriggeredBy: domain.TriggerAPI,
		DryRun:      true,
		Status:      domain.RunStatusRunning,
		StartedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	query, args, err := insertRunQuery(run)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO agentic_run_logs (id,customer_id,usecase,triggered_by,dry_run,status,started_at,actions) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)", query)
	assert.Equal(t, "[]", args[7])
}

func TestEnqueueQuery(t *testing.T) {
	changes := []domain.PendingChange{
		{ID: "c1", CustomerID: "123", Usecase: domain.UsecaseGoogleAds, Change: domain.ChangeEnvelope{Type: domain.ChangeBudget, CampaignID: "111", BudgetMicros: 1}},
		{ID: "c2", CustomerID: "123", Usecase: domain.UsecaseGoogleAds, Change: domain.ChangeEnvelope{Type: domain.ChangeCampaignStatus, CampaignID: "111", Status: domain.CampaignStatusPaused}},
	}

	query, args, err := enqueueQuery(changes)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO pending_changes (id,customer_id,usecase,payload,created_at) VALUES ($1,$2,$3,$4::jsonb,$5),($6,$7,$8,$9::jsonb,$10)", query)
	assert.Len(t, args, 10)
	assert.Contains(t, args[3], `"type":"budget"`)
}
