package middleware

import (
	"strings"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Session loads the operator's session for the request and persists it
// once the handler is done. A session that cannot be read is dropped.
func Session(sessions *helper.Sessions, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := sessions.Load(c)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("session not loaded")
			c.ClearCookie(helper.SessionCookie)
		}
		helper.SetSession(c, s)
		herr := c.Next()
		if perr := sessions.Persist(helper.CurrentSession(c)); perr != nil {
			log.Warn().Err(perr).Str("path", c.Path()).Msg("session not saved")
			c.ClearCookie(helper.SessionCookie)
		}
		return herr
	}
}

// Protected sends anonymous visitors to the login page. JSON callers get
// a 401 instead of a redirect.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.CurrentSession(c).Authenticated() {
			return c.Next()
		}
		if wantsJSON(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, nil)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// Guest keeps logged-in operators away from the login page.
func Guest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.CurrentSession(c).Authenticated() {
			return c.Redirect("/manage/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) ||
		strings.HasPrefix(c.Path(), "/api/")
}
