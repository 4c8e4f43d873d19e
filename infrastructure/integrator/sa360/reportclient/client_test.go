package reportclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	sa360domain "github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportClient_SearchFollowsPages(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v0/customers/1234567890/searchAds360:search", r.URL.Path)
		assert.Equal(t, "5556667777", r.Header.Get("login-customer-id"))

		var req sa360domain.SearchRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))

		if req.PageToken == "" {
			_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"1","name":"A","status":"ENABLED","endDate":"2037-12-30"}}],"nextPageToken":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"campaign":{"id":"2","name":"B","status":"PAUSED"},"campaignBudget":{"amountMicros":"12500000"}}]}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL+"/v0", "555-666-7777", server.Client())

	rows, err := client.Search(context.Background(), "123-456-7890", "", "SELECT campaign.id FROM campaign")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].Campaign.ID)
	assert.Equal(t, "2037-12-30", rows[0].Campaign.EndDate)
	assert.Equal(t, int64(12_500_000), rows[1].CampaignBudget.AmountMicros)
}

func TestReportClient_LoginCustomerIDOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1112223333", r.Header.Get("login-customer-id"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, "555-666-7777", server.Client())

	rows, err := client.Search(context.Background(), "123", "111-222-3333", "SELECT campaign.id FROM campaign")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportClient_SearchSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.URL, "", server.Client())

	_, err := client.Search(context.Background(), "123", "", "SELECT campaign.id FROM campaign")
	require.Error(t, err)

	var apiErr *adsdomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.HTTPStatus)
	assert.True(t, apiErr.IsAuthError())
}
