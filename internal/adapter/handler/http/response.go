package http

import (
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Unknown content key"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Cache cleared"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
}

// contentResponse wraps one content key. ServedAt is unix milliseconds.
type contentResponse struct {
	Success  bool        `json:"success" example:"true"`
	Key      string      `json:"key" example:"products"`
	ServedAt int64       `json:"served_at" example:"1767225600000"`
	Data     interface{} `json:"data" swaggertype:"object"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Success: false,
		Code:    statusCode,
		Message: message,
	})
}

func newSuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func newContentResponse(c *gin.Context, statusCode int, key domain.ContentKey, data interface{}) {
	c.JSON(statusCode, contentResponse{
		Success:  true,
		Key:      key.String(),
		ServedAt: time.Now().UnixMilli(),
		Data:     data,
	})
}
