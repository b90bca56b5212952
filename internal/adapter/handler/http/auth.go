package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoginResponse struct {
	Token    string       `json:"token"`
	Operator OperatorInfo `json:"operator"`
}

type OperatorInfo struct {
	ID    uuid.UUID           `json:"id"`
	Email string              `json:"email"`
	Role  domain.OperatorRole `json:"role"`
}

type AuthHandler struct {
	authService ports.AuthService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@natnat.vn"`
	Password string `json:"password" binding:"required" example:"password123"`
}

func NewAuthHandler(
	authService ports.AuthService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Operator login
// @Description Exchanges operator credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Logged in"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid request")
		return
	}

	token, operator, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("Login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	h.logger.Info("Operator logged in", map[string]interface{}{
		"email":       operator.Email,
		"operator_id": operator.ID,
	})

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Operator: OperatorInfo{
			ID:    operator.ID,
			Email: operator.Email,
			Role:  operator.Role,
		},
	})
}
