package helper

import (
	"strings"

	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

// SessionLocal is the fiber.Ctx local holding the request's *Session.
const SessionLocal = "session"

// CurrentSession returns the session loaded by the session middleware.
func CurrentSession(c *fiber.Ctx) *Session {
	if s, ok := c.Locals(SessionLocal).(*Session); ok {
		return s
	}
	s := &Session{}
	c.Locals(SessionLocal, s)
	return s
}

func SetSession(c *fiber.Ctx, s *Session) {
	c.Locals(SessionLocal, s)
}

// Success queues a success toast and redirects with 303.
func Success(c *fiber.Ctx, message, to string) error {
	CurrentSession(c).AddFlash(model.ToastSuccess, message)
	return c.Redirect(to, fiber.StatusSeeOther)
}

// Fail queues an error toast and redirects with 303.
func Fail(c *fiber.Ctx, message, to string) error {
	CurrentSession(c).AddFlash(model.ToastError, message)
	return c.Redirect(to, fiber.StatusSeeOther)
}

// FailForm rejects a submitted form: the toast and the submitted values
// (passwords excluded) survive the redirect back to the form.
func FailForm(c *fiber.Ctx, message, fallback string) error {
	s := CurrentSession(c)
	s.AddFlash(model.ToastError, message)
	s.SetOld(FormValues(c))
	return c.RedirectBack(fallback, fiber.StatusSeeOther)
}

// FormValues flattens a posted form to its first value per key. The csrf
// token is dropped with the passwords.
func FormValues(c *fiber.Ctx) map[string]string {
	out := map[string]string{}
	keep := func(k, v string) {
		if k == "_csrf" || strings.Contains(strings.ToLower(k), "password") {
			return
		}
		if _, seen := out[k]; !seen {
			out[k] = v
		}
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k, vals := range form.Value {
			if len(vals) > 0 {
				keep(k, vals[0])
			}
		}
		return out
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		keep(string(k), string(v))
	})
	return out
}
