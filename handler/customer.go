package handler

import (
	"strconv"

	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

const customerResource = "customer"

func (h *Handler) ListCustomers(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListCustomers(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Customer]{}
	}
	return h.render(c, "customer_list", "Customers", customerResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

// CustomerBookings lists one customer's bookings, optionally for a single
// cinema.
func (h *Handler) CustomerBookings(c *fiber.Ctx) error {
	customerId := inputId(c)
	cinemaId := utils.QueryInt(c, "cinemaId", 0)
	q := listQuery(c)
	ctx := c.UserContext()
	api := h.api(c)

	page, err := api.ListBookings(ctx, q, customerId, cinemaId)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Booking]{}
	}
	cinemas, err := allCinemas(ctx, api)
	if err != nil {
		h.Log.Warn().Err(err).Msg("cinema filter unavailable")
	}
	keep := map[string]string{}
	if cinemaId > 0 {
		keep["cinemaId"] = strconv.Itoa(cinemaId)
	}
	return h.render(c, "customer_bookings", "Bookings", customerResource, fiber.Map{
		"CustomerId": customerId,
		"CinemaId":   cinemaId,
		"Cinemas":    cinemas,
		"Page":       page,
		"Query":      q.Keyword,
		"Base":       "/manage/customer/" + strconv.Itoa(customerId) + "/bookings",
		"Keep":       keep,
	})
}
