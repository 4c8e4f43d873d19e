package config

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// APIIdentifier identifica para qual API a credencial será usada
type APIIdentifier string

const (
	APIGoogleAds    APIIdentifier = "google_ads"
	APISearchAds360 APIIdentifier = "search_ads_360"
	APISheets       APIIdentifier = "sheets"
)

var apiScopes = map[APIIdentifier][]string{
	APIGoogleAds:    {"https://www.googleapis.com/auth/adwords"},
	APISearchAds360: {"https://www.googleapis.com/auth/doubleclicksearch"},
	APISheets:       {"https://www.googleapis.com/auth/spreadsheets"},
}

// CredentialResolver entrega um TokenSource por API. A origem dos segredos fica fora do serviço.
type CredentialResolver interface {
	TokenSource(ctx context.Context, api APIIdentifier) (oauth2.TokenSource, error)
}

// RefreshTokenResolver resolve credenciais a partir de refresh tokens configurados no ambiente
type RefreshTokenResolver struct {
	clientID      string
	clientSecret  string
	refreshTokens map[APIIdentifier]string
	endpoint      oauth2.Endpoint
}

func NewRefreshTokenResolver(cfg *Config) *RefreshTokenResolver {
	tokens := map[APIIdentifier]string{
		APIGoogleAds:    cfg.OAuth.RefreshToken,
		APISearchAds360: firstNonEmpty(cfg.OAuth.SA360RefreshToken, cfg.OAuth.RefreshToken),
		APISheets:       firstNonEmpty(cfg.OAuth.SheetsRefresh, cfg.OAuth.RefreshToken),
	}

	return &RefreshTokenResolver{
		clientID:      cfg.OAuth.ClientID,
		clientSecret:  cfg.OAuth.ClientSecret,
		refreshTokens: tokens,
		endpoint:      google.Endpoint,
	}
}

func (r *RefreshTokenResolver) TokenSource(ctx context.Context, api APIIdentifier) (oauth2.TokenSource, error) {
	scopes, known := apiScopes[api]
	if !known {
		return nil, fmt.Errorf("config: unknown api identifier %q", api)
	}

	refreshToken := r.refreshTokens[api]
	if refreshToken == "" || r.clientID == "" {
		return nil, fmt.Errorf("config: no credentials configured for %s", api)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     r.clientID,
		ClientSecret: r.clientSecret,
		Scopes:       scopes,
		Endpoint:     r.endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	return oauthConfig.TokenSource(ctx, token), nil
}

// StaticResolver devolve sempre o mesmo token, usado em ambientes locais e testes
type StaticResolver struct {
	AccessToken string
}

func (s StaticResolver) TokenSource(_ context.Context, _ APIIdentifier) (oauth2.TokenSource, error) {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.AccessToken, TokenType: "Bearer"}), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
