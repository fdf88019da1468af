package handler

import (
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

const qrSize = 256

func (h *Handler) BookingDetail(c *fiber.Ctx) error {
	b, err := h.api(c).GetBooking(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, c.Get(fiber.HeaderReferer, "/manage/customer"))
	}
	return h.render(c, "booking_detail", "Booking "+b.BookingRefId, customerResource, fiber.Map{"Booking": b})
}

// BookingQR serves the booking reference as a PNG QR code.
func (h *Handler) BookingQR(c *fiber.Ctx) error {
	b, err := h.api(c).GetBooking(c.UserContext(), inputId(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, utils.FirstMessage(err), err)
	}
	png, err := utils.BookingQR(b.BookingRefId, qrSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	return c.Send(png)
}
