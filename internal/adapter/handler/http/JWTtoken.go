package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "flowershop_content"

var errInvalidOperatorClaims = errors.New("invalid operator claims")

// operatorClaims is the body of an operator bearer token. The token id is the
// registered "jti" claim.
type operatorClaims struct {
	OperatorID string              `json:"operator_id"`
	Role       domain.OperatorRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTTokenService struct {
	secretKey  []byte
	expiration time.Duration
	logger     ports.LoggerPort
}

func NewJWTTokenService(secretKey string, durationStr string, logger ports.LoggerPort) *JWTTokenService {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		logger.Warn("Invalid token duration, using 24h", map[string]interface{}{
			"duration": durationStr,
		})
		duration = 24 * time.Hour
	}

	return &JWTTokenService{
		secretKey:  []byte(secretKey),
		expiration: duration,
		logger:     logger,
	}
}

func (j *JWTTokenService) CreateToken(operator *domain.Operator) (string, error) {
	const op = "JWTTokenService.CreateToken"

	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()
	claims := operatorClaims{
		OperatorID: operator.ID.String(),
		Role:       operator.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Issuer:    tokenIssuer,
			Subject:   operator.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// VerifyToken accepts only HS256 tokens from this issuer that carry an
// expiry, a token id, an operator id and a known role.
func (j *JWTTokenService) VerifyToken(token string) (domain.TokenPayload, error) {
	var claims operatorClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		j.logger.Warn("Rejected operator token", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.TokenPayload{}, err
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: jti", errInvalidOperatorClaims)
	}
	operatorID, err := uuid.Parse(claims.OperatorID)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: operator_id", errInvalidOperatorClaims)
	}

	switch claims.Role {
	case domain.Admin, domain.Editor:
	default:
		j.logger.Warn("Unknown role in operator token", map[string]interface{}{
			"role": string(claims.Role),
		})
		return domain.TokenPayload{}, fmt.Errorf("%w: role %q", errInvalidOperatorClaims, claims.Role)
	}

	return domain.TokenPayload{
		ID:         tokenID,
		OperatorID: operatorID,
		Role:       claims.Role,
	}, nil
}

var _ ports.TokenService = (*JWTTokenService)(nil)
