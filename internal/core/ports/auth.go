package ports

import (
	"context"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
)

type TokenService interface {
	CreateToken(operator *domain.Operator) (string, error)
	VerifyToken(token string) (domain.TokenPayload, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Operator, error)
}
