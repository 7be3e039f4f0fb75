package handler

import (
	"github.com/gofiber/fiber/v2"

	"bindash/internal/dashboard"
	"bindash/internal/service"
)

// toggleRequest carries the current dashboard state and the column the user clicked.
type toggleRequest struct {
	State rawState `json:"state"`
	Field string   `json:"field"`
}

// rawState is dashboard.State before validation.
type rawState struct {
	Search string `json:"search"`
	Sort   string `json:"sort"`
	Order  string `json:"order"`
}

// stateFromQuery reads search, sort and order from the query string.
func stateFromQuery(c *fiber.Ctx) (dashboard.State, error) {
	return dashboard.NewState(c.Query("search"), c.Query("sort"), c.Query("order"))
}

// ListBins godoc
// @Summary List trash bins
// @Description Filtered by location (case-insensitive) and sorted; every row carries its fill class and color.
// @Tags bins
// @Produce json
// @Param search query string false "Location substring"
// @Param sort query string false "id | location | fillLevel (alias fill_level)" default(id)
// @Param order query string false "asc | desc" default(asc)
// @Success 200 {object} dashboard.View
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /bins [get]
func ListBins(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := stateFromQuery(c)
		if err != nil {
			return writeStateError(c, err)
		}
		v, err := svc.View(c.UserContext(), state)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

// GetBin godoc
// @Summary Get a trash bin
// @Tags bins
// @Produce json
// @Param id path string true "Bin ID"
// @Success 200 {object} dashboard.Row
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /bins/{id} [get]
func GetBin(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		row, err := svc.Bin(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(row)
	}
}

// ToggleSort godoc
// @Summary Toggle the sort column
// @Description Same field flips the direction; another field sorts by it ascending.
// @Tags bins
// @Accept json
// @Produce json
// @Param request body toggleRequest true "Current state and clicked field"
// @Success 200 {object} dashboard.State
// @Failure 400 {object} errorPayload
// @Router /bins/sort [post]
func ToggleSort() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req toggleRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		state, err := dashboard.NewState(req.State.Search, req.State.Sort, req.State.Order)
		if err != nil {
			return writeStateError(c, err)
		}
		if req.Field == "" {
			return writeStateError(c, dashboard.ErrInvalidSortField)
		}
		field, err := dashboard.ParseSortField(req.Field)
		if err != nil {
			return writeStateError(c, err)
		}
		return c.JSON(state.ToggleSort(field))
	}
}
