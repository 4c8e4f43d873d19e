package domain

import "github.com/golang-jwt/jwt/v5"

type ServiceRole string

const (
	RoleAdmin    ServiceRole = "admin"
	RoleOperator ServiceRole = "operator"
	RoleAgent    ServiceRole = "agent"
)

// Claims identifica o chamador de serviço autenticado por JWT
type Claims struct {
	ServiceName string      `json:"service_name"`
	Role        ServiceRole `json:"role"`
	jwt.RegisteredClaims
}

func (r ServiceRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOperator || r == RoleAgent
}
