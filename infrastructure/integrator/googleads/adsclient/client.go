package adsclient

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
	"github.com/stensrud/agentic-dsta/internal/config"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

type Client interface {
	Search(ctx context.Context, customerID, query string) ([]adsdomain.GoogleAdsRow, error)
	Mutate(ctx context.Context, customerID string, resource adsdomain.MutateResource, operations []adsdomain.Operation) (*adsdomain.MutateResponse, error)
}

type AdsClient struct {
	baseURL                string
	developerToken         string
	defaultLoginCustomerID string
	httpClient             *http.Client
}

// NewClient cria o cliente REST autenticado com o TokenSource do Google Ads
func NewClient(ctx context.Context, cfg *config.Config, resolver config.CredentialResolver) (*AdsClient, error) {
	ts, err := resolver.TokenSource(ctx, config.APIGoogleAds)
	if err != nil {
		return nil, errors.Wrap(err, "google ads: resolving credentials")
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.GoogleAds.RequestTimeout

	return NewClientWithHTTP(cfg.GoogleAds.URL, cfg.GoogleAds.DeveloperToken, cfg.GoogleAds.LoginCustomerID, httpClient), nil
}

func NewClientWithHTTP(baseURL, developerToken, loginCustomerID string, httpClient *http.Client) *AdsClient {
	return &AdsClient{
		baseURL:                strings.TrimRight(baseURL, "/"),
		developerToken:         developerToken,
		defaultLoginCustomerID: NormalizeCustomerID(loginCustomerID),
		httpClient:             httpClient,
	}
}

type contextKey string

const loginCustomerIDKey contextKey = "login_customer_id"

// WithLoginCustomerID define o MCC usado no header login-customer-id das chamadas feitas com ctx
func WithLoginCustomerID(ctx context.Context, loginCustomerID string) context.Context {
	if loginCustomerID == "" {
		return ctx
	}
	return context.WithValue(ctx, loginCustomerIDKey, NormalizeCustomerID(loginCustomerID))
}

func (c *AdsClient) loginCustomerID(ctx context.Context) string {
	if id, ok := ctx.Value(loginCustomerIDKey).(string); ok && id != "" {
		return id
	}
	return c.defaultLoginCustomerID
}

// NormalizeCustomerID remove os hífens do formato 123-456-7890
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}

func (c *AdsClient) post(ctx context.Context, customerID, suffix string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "google ads: encoding request")
	}

	url := fmt.Sprintf("%s/customers/%s/%s", c.baseURL, NormalizeCustomerID(customerID), suffix)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "google ads: building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.developerToken)
	if login := c.loginCustomerID(ctx); login != "" {
		req.Header.Set("login-customer-id", login)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", url).Error("Erro ao fazer a requisição ao Google Ads")
		return errors.Wrap(err, "google ads: request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "google ads: reading response")
	}

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do Google Ads")
		return errors.Wrap(err, "google ads: decoding response")
	}

	return nil
}

func decodeAPIError(status int, body []byte) error {
	var errResp adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &adsdomain.APIError{
			HTTPStatus: status,
			Code:       status,
			Status:     http.StatusText(status),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return adsdomain.NewAPIError(status, errResp)
}
