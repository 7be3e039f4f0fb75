package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bindash/internal/service"
)

// Pinger reports whether the seed source's backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck godoc
// @Summary Readiness
// @Description Pings the seed source (database or seed object) when it has one and reports the seed load status.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(dep Pinger, svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if dep != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := dep.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		body := fiber.Map{"status": "healthy"}
		if svc != nil {
			body["seed"] = svc.Status()
		}
		return c.Status(fiber.StatusOK).JSON(body)
	}
}

// LivenessProbe godoc
// @Summary Liveness
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
