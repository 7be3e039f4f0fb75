package handler

import (
	"github.com/gofiber/fiber/v2"

	"bindash/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// dep may be nil when the seed source has no external dependency.
func RegisterRoutes(app *fiber.App, dep Pinger, svc service.DashboardService) {
	app.Get("/health", HealthCheck(dep, svc))
	app.Get("/healthz", LivenessProbe())

	app.Get("/", Dashboard(svc))

	app.Get("/bins", ListBins(svc))
	app.Post("/bins/sort", ToggleSort())
	app.Get("/bins/:id", GetBin(svc))
}
