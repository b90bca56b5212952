package http

import (
	"github.com/natnat/flowershop_content_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
)

const operatorPayloadKey = "operator_payload"

func setOperatorPayload(c *gin.Context, payload domain.TokenPayload) {
	c.Set(operatorPayloadKey, payload)
}

// operatorPayload returns the verified token of the calling operator, if the
// auth middleware ran for this request.
func operatorPayload(c *gin.Context) (domain.TokenPayload, bool) {
	value, exists := c.Get(operatorPayloadKey)
	if !exists {
		return domain.TokenPayload{}, false
	}
	payload, ok := value.(domain.TokenPayload)
	return payload, ok
}
