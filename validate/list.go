package validate

import (
	"strconv"

	"cinema_console/client"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

// ListQuery reads ?q= and ?page= for every table page.
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("listQuery", client.ListQuery{
			Keyword:    c.Query("q"),
			PageNumber: utils.QueryInt(c, "page", 1),
			PageSize:   client.DefaultPageSize,
		})
		return c.Next()
	}
}

// Dashboard reads ?timeOption= (default monthly) and ?cinemaId= (default all).
func Dashboard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		opt := model.TimeMonthly
		if n, err := strconv.Atoi(c.Query("timeOption")); err == nil && n >= int(model.TimeDaily) && n <= int(model.TimeYearly) {
			opt = model.TimeOption(n)
		}
		cinemaId := model.AllCinemas
		if n, err := strconv.Atoi(c.Query("cinemaId")); err == nil && n > 0 {
			cinemaId = n
		}
		c.Locals("timeOption", opt)
		c.Locals("cinemaId", cinemaId)
		return c.Next()
	}
}
