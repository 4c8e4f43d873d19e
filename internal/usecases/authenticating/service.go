package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stensrud/agentic-dsta/internal/config"
	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stensrud/agentic-dsta/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Authenticator valida os tokens de serviço que chamam a API
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(serviceName string, role domain.ServiceRole, ttl time.Duration) (string, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.Auth.Secret),
		now:    time.Now,
	}
}

// IssueToken gera um token HS256 para um serviço chamador
func (s *Service) IssueToken(serviceName string, role domain.ServiceRole, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}
	if serviceName == "" {
		return "", NewAuthError(ErrMissingServiceName, apiErrors.ErrMissingRequiredData, "")
	}
	if !role.IsValid() {
		return "", NewAuthErrorForService(ErrInvalidServiceRole, apiErrors.ErrInvalidRequest, serviceName, string(role))
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		ServiceName: serviceName,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   serviceName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	if claims.ServiceName == "" {
		return nil, NewAuthError(ErrMissingServiceName, apiErrors.ErrInvalidToken, "")
	}
	if !claims.Role.IsValid() {
		return nil, NewAuthErrorForService(ErrInvalidServiceRole, apiErrors.ErrInvalidToken, claims.ServiceName, string(claims.Role))
	}

	return claims, nil
}
