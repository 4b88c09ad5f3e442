package handler

import (
	"context"
	"time"

	"cs-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency whose reachability is reported by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthResponse reports the state of the service and its dependencies
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// HealthHandler reports service liveness and dependency reachability
type HealthHandler struct {
	components map[string]Pinger
}

// NewHealthHandler creates a HealthHandler checking the given components
func NewHealthHandler(components map[string]Pinger) *HealthHandler {
	return &HealthHandler{components: components}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the database and cache are reachable
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 503 {object} handler.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Components: make(map[string]string, len(h.components))}
	for name, p := range h.components {
		if err := p.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("component", name), zap.Error(err))
			resp.Components[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Components[name] = "up"
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
