package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/crew-scheduler/internal/persistence"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	cache   *persistence.Cache
	version string
}

// NewHealthHandler constructs handler. The cache may be nil.
func NewHealthHandler(cache *persistence.Cache, version string) *HealthHandler {
	return &HealthHandler{cache: cache, version: version}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.version})
}

// Ready GET /health/ready. The cache is optional infrastructure, so an
// unreachable Redis is reported but does not fail readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	cacheStatus := "disabled"
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			cacheStatus = "unreachable"
		} else {
			cacheStatus = "ok"
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "cache": cacheStatus, "version": h.version})
}
