package handler

import (
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) loadDashboard(c *fiber.Ctx) *model.Dashboard {
	opt := c.Locals("timeOption").(model.TimeOption)
	cinemaId := c.Locals("cinemaId").(int)
	return helper.LoadDashboard(c.UserContext(), h.api(c), opt, cinemaId)
}

// Dashboard renders the statistics page. Failed widgets show their error
// in place of the data.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	d := h.loadDashboard(c)
	if d.Unauthorized {
		return h.expired(c)
	}
	return h.render(c, "dashboard", "Dashboard", "dashboard", fiber.Map{
		"Dashboard":   d,
		"TimeOptions": model.TimeOptions,
	})
}

// DashboardData serves the same aggregation as JSON for chart widgets.
func (h *Handler) DashboardData(c *fiber.Ctx) error {
	d := h.loadDashboard(c)
	if d.Unauthorized {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, d)
}
