package http

import (
	"net/http"
	"strings"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey = "authorization"
	authorizationType      = "bearer"
)

func AuthMiddleware(token ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader(authorizationHeaderKey)
		if authorizationHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Auth header required")
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			newErrorResponse(c, http.StatusUnauthorized, "Auth fields required")
			return
		}

		if strings.ToLower(fields[0]) != authorizationType {
			newErrorResponse(c, http.StatusUnauthorized, "Unsupported authorization type")
			return
		}

		payload, err := token.VerifyToken(fields[1])
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		setOperatorPayload(c, payload)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, ok := operatorPayload(c)
		if !ok {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization required")
			return
		}

		if payload.Role != domain.Admin {
			newErrorResponse(c, http.StatusForbidden, "Admin access required")
			return
		}

		c.Next()
	}
}
