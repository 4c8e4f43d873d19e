package reportclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/stensrud/agentic-dsta/infrastructure/integrator/googleads/domain"
	sa360domain "github.com/stensrud/agentic-dsta/infrastructure/integrator/sa360/domain"
	"github.com/stensrud/agentic-dsta/internal/config"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxSearchPages = 50

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	Search(ctx context.Context, customerID, loginCustomerID, query string) ([]sa360domain.Row, error)
}

type ReportClient struct {
	baseURL                string
	defaultLoginCustomerID string
	httpClient             *http.Client
}

// NewClient cria o cliente da API de relatórios do SA360 autenticado com o TokenSource do SA360
func NewClient(ctx context.Context, cfg *config.Config, resolver config.CredentialResolver) (*ReportClient, error) {
	ts, err := resolver.TokenSource(ctx, config.APISearchAds360)
	if err != nil {
		return nil, errors.Wrap(err, "sa360: resolving credentials")
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.SA360.RequestTimeout

	return NewClientWithHTTP(cfg.SA360.URL, cfg.SA360.LoginCustomerID, httpClient), nil
}

func NewClientWithHTTP(baseURL, loginCustomerID string, httpClient *http.Client) *ReportClient {
	return &ReportClient{
		baseURL:                strings.TrimRight(baseURL, "/"),
		defaultLoginCustomerID: normalizeCustomerID(loginCustomerID),
		httpClient:             httpClient,
	}
}

func normalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}

// Search executa a consulta no searchAds360:search e percorre todas as páginas
func (c *ReportClient) Search(ctx context.Context, customerID, loginCustomerID, query string) ([]sa360domain.Row, error) {
	login := normalizeCustomerID(loginCustomerID)
	if login == "" {
		login = c.defaultLoginCustomerID
	}

	rows := make([]sa360domain.Row, 0)
	request := sa360domain.SearchRequest{Query: query}

	for page := 0; page < maxSearchPages; page++ {
		var response sa360domain.SearchResponse
		if err := c.post(ctx, customerID, login, request, &response); err != nil {
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

func (c *ReportClient) post(ctx context.Context, customerID, login string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "sa360: encoding request")
	}

	url := fmt.Sprintf("%s/customers/%s/searchAds360:search", c.baseURL, normalizeCustomerID(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "sa360: building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if login != "" {
		req.Header.Set("login-customer-id", login)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", url).Error("Erro ao fazer a requisição ao SA360")
		return errors.Wrap(err, "sa360: request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "sa360: reading response")
	}

	if resp.StatusCode != http.StatusOK {
		// o SA360 usa o mesmo envelope de erro do Google Ads
		var errResp adsdomain.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return &adsdomain.APIError{
				HTTPStatus: resp.StatusCode,
				Code:       resp.StatusCode,
				Status:     http.StatusText(resp.StatusCode),
				Message:    strings.TrimSpace(string(respBody)),
			}
		}
		return adsdomain.NewAPIError(resp.StatusCode, errResp)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do SA360")
		return errors.Wrap(err, "sa360: decoding response")
	}

	return nil
}
