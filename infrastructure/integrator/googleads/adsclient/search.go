package adsclient

import (
	"context"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
)

const maxSearchPages = 50

// Search executa uma consulta GAQL e percorre todas as páginas
func (c *AdsClient) Search(ctx context.Context, customerID, query string) ([]adsdomain.GoogleAdsRow, error) {
	rows := make([]adsdomain.GoogleAdsRow, 0)
	request := adsdomain.SearchRequest{Query: query}

	for page := 0; page < maxSearchPages; page++ {
		var response adsdomain.SearchResponse
		if err := c.post(ctx, customerID, "googleAds:search", request, &response); err != nil {
			return nil, err
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		request.PageToken = response.NextPageToken
	}

	return rows, nil
}
