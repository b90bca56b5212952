package services

import (
	"context"
	"strings"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the operators allowed to manage the content
// cache. Operators come from configuration; there is no user store.
type AuthService struct {
	operators    map[string]domain.Operator
	tokenService ports.TokenService
	logger       ports.LoggerPort
}

func NewAuthService(
	operators []domain.Operator,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
) *AuthService {
	byEmail := make(map[string]domain.Operator, len(operators))
	for _, op := range operators {
		if op.Email == "" || op.PasswordHash == "" {
			continue
		}
		byEmail[strings.ToLower(op.Email)] = op
	}

	return &AuthService{
		operators:    byEmail,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Operator, error) {
	operator, ok := s.operators[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		s.logger.Info("Login attempt for unknown operator", map[string]interface{}{
			"email": email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(&operator)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":       err.Error(),
			"operator_id": operator.ID,
		})
		return "", nil, err
	}

	operatorResponse := operator
	operatorResponse.PasswordHash = ""
	return token, &operatorResponse, nil
}

var _ ports.AuthService = (*AuthService)(nil)
