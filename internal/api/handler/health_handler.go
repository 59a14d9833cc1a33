package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/marketbay/storefront/internal/core/ports"
)

const probeTimeout = 2 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	rdb     *redis.Client
	backend ports.BackendPinger
}

func NewHealthHandler(rdb *redis.Client, backend ports.BackendPinger) *HealthHandler {
	return &HealthHandler{rdb: rdb, backend: backend}
}

// Liveness answers as long as the process runs.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness checks the session store and the commerce backend. Either one
// down means the console cannot serve its views.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	checks := map[string]string{"redis": "ok", "backend": "ok"}
	healthy := true

	if err := h.rdb.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}
	if err := h.backend.Ping(ctx); err != nil {
		checks["backend"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, checks)
}
