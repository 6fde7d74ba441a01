package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/tuanhng/me-api/adapters/persistence"
	"github.com/tuanhng/me-api/pkg/logger"
)

type HealthHandler struct {
	store  *persistence.HealthRepo
	cache  *redis.Client
	logger logger.Logger
}

func NewHealthHandler(store *persistence.HealthRepo, cache *redis.Client, log logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache, logger: log}
}

// Check always answers 200; connectivity problems degrade individual fields
// instead of failing the request.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	resp := gin.H{
		"status":  "ok",
		"message": "Me-API Playground is running!",
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health: database unreachable")
		resp["status"] = "degraded"
		resp["database"] = "down"
	} else {
		resp["database"] = "up"
		resp["tables"] = h.store.TableCounts(ctx)
	}

	if err := h.cache.Ping(ctx).Err(); err != nil {
		h.logger.Warn("health: redis unreachable")
		resp["status"] = "degraded"
		resp["cache"] = "down"
	} else {
		resp["cache"] = "up"
	}

	c.JSON(http.StatusOK, resp)
}
