package adsclient

import (
	"context"
	"fmt"

	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
)

// Mutate envia as operações para o endpoint {resource}:mutate do cliente
func (c *AdsClient) Mutate(ctx context.Context, customerID string, resource adsdomain.MutateResource, operations []adsdomain.Operation) (*adsdomain.MutateResponse, error) {
	if len(operations) == 0 {
		return &adsdomain.MutateResponse{}, nil
	}

	var response adsdomain.MutateResponse
	suffix := fmt.Sprintf("%s:mutate", resource)
	if err := c.post(ctx, customerID, suffix, adsdomain.MutateRequest{Operations: operations}, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
