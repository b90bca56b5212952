package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"
	"github.com/natnat/flowershop_content_microservice/internal/core/services"

	"github.com/gin-gonic/gin"
)

// ContentCatalog is the set of per-key bindings the handler serves from.
type ContentCatalog interface {
	Lookup(key domain.ContentKey) (services.ContentBinding, bool)
	Refresh(ctx context.Context) error
	Snapshot() domain.AllData
}

type ContentHandler struct {
	contentService *services.ContentService
	catalog        ContentCatalog
	durableBackend string
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type ContentDTO struct {
	Key     string      `json:"key" example:"products"`
	Data    interface{} `json:"data" swaggertype:"object"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
}

type StatusDTO struct {
	Enabled        bool    `json:"enabled"`
	TTLMinutes     float64 `json:"ttl_minutes" example:"5"`
	DurableBackend string  `json:"durable_backend" example:"sqlite"`
}

func NewContentHandler(
	contentService *services.ContentService,
	catalog ContentCatalog,
	durableBackend string,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		catalog:        catalog,
		durableBackend: durableBackend,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary All storefront content
// @Description Every section's best available value; bundled defaults fill in for failed sections
// @Tags content
// @Produce json
// @Success 200 {object} contentResponse{data=domain.AllData}
// @Router /api/content [get]
func (h *ContentHandler) GetAll(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	// Failures are already logged per section; defaults stay in place.
	_ = h.catalog.Refresh(c.Request.Context())

	newContentResponse(c, http.StatusOK, domain.KeyAll, h.catalog.Snapshot())
}

// @Summary Content for one key
// @Description Resolves one content key through the cache, falling back to bundled defaults
// @Tags content
// @Produce json
// @Param key path string true "Content key" example:"products"
// @Success 200 {object} contentResponse{data=ContentDTO}
// @Failure 404 {object} errorResponse "Unknown content key"
// @Router /api/content/{key} [get]
func (h *ContentHandler) GetByKey(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	key, err := domain.ParseContentKey(c.Param("key"))
	if err != nil {
		h.logger.Debug("Unknown content key requested", map[string]interface{}{
			"key": c.Param("key"),
		})
		newErrorResponse(c, http.StatusNotFound, "Unknown content key")
		return
	}

	binding, ok := h.catalog.Lookup(key)
	if !ok {
		newErrorResponse(c, http.StatusNotFound, "Unknown content key")
		return
	}

	// Loading and Error come from this request's refetch.
	refetchErr := binding.Refetch(c.Request.Context())

	dto := ContentDTO{
		Key:  key.String(),
		Data: binding.Current().Data,
	}
	if refetchErr != nil {
		dto.Error = publicError(refetchErr)
	}

	newContentResponse(c, http.StatusOK, key, dto)
}

// @Summary Content API status
// @Tags content
// @Produce json
// @Success 200 {object} successResponse{data=StatusDTO}
// @Router /api/status [get]
func (h *ContentHandler) Status(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "", StatusDTO{
		Enabled:        h.contentService.Enabled(),
		TTLMinutes:     h.contentService.TTL().Minutes(),
		DurableBackend: h.durableBackend,
	})
}

// @Summary Clear the content cache
// @Description Empties both cache tiers so the next request hits the spreadsheet
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} successResponse "Cache cleared"
// @Failure 401 {object} errorResponse "Not authorized"
// @Failure 403 {object} errorResponse "Admin access required"
// @Router /api/cache [delete]
func (h *ContentHandler) ClearCache(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.contentService.ClearAll(c.Request.Context())

	if payload, ok := operatorPayload(c); ok {
		h.logger.Info("Content cache cleared by operator", map[string]interface{}{
			"operator_id": payload.OperatorID.String(),
		})
	}

	newSuccessResponse(c, http.StatusOK, "Cache cleared", nil)
}

// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} successResponse
// @Router /health [get]
func (h *ContentHandler) Health(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "", nil)
}

// publicError keeps remote failure text but hides internal detail.
func publicError(err error) string {
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return "content unavailable"
}
