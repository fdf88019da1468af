package handler

import (
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return h.render(c, "login", "Log in", "", nil)
}

// Login exchanges employee credentials for a token. Customers may not use
// the console.
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("inputLogin").(model.LoginInput)

	auth, err := h.API.Login(c.UserContext(), &input)
	if err != nil {
		h.Log.Info().Str("employee_no", input.EmployeeNo).Msg("login rejected")
		return helper.FailForm(c, utils.FirstMessage(err), "/login")
	}
	if auth.Role == constants.CUSTOMER_ROLE {
		return helper.FailForm(c, constants.ONLY_CUSTOMER, "/login")
	}

	s := helper.CurrentSession(c)
	s.User = auth
	s.ExpiresAt = zeroTime
	s.Rotate()
	h.record(c, helper.ActionLogin, "session", auth.UserId, nil)
	h.Log.Info().Str("employee_no", auth.EmployeeNo).Str("role", auth.Role).Msg("operator logged in")
	return helper.Success(c, constants.LOGIN_SUCCESS, "/manage/dashboard")
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	helper.CurrentSession(c).Logout()
	return helper.Success(c, constants.LOGOUT_SUCCESS, "/login")
}
