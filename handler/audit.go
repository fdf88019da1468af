package handler

import (
	"cinema_console/constants"

	"github.com/gofiber/fiber/v2"
)

const auditLimit = 50

// AuditTrail lists the most recent console mutations.
func (h *Handler) AuditTrail(c *fiber.Ctx) error {
	data := fiber.Map{"Enabled": h.Audit.Enabled(), "Disabled": constants.AUDIT_DISABLED}
	if h.Audit.Enabled() {
		entries, err := h.Audit.Recent(c.UserContext(), auditLimit)
		if err != nil {
			h.Log.Error().Err(err).Msg("audit trail unavailable")
			return fiber.NewError(fiber.StatusInternalServerError, constants.GENERIC_ERROR)
		}
		data["Entries"] = entries
	}
	return h.render(c, "audit", "Audit trail", "audit", data)
}
