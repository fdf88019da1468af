package handler

import (
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

// Account shows the logged-in employee's own profile.
func (h *Handler) Account(c *fiber.Ctx) error {
	userId := helper.CurrentSession(c).User.UserId
	e, err := h.api(c).GetEmployee(c.UserContext(), userId)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		e = &model.Employee{}
	}
	return h.render(c, "account", "My account", "account", fiber.Map{"Employee": e})
}

func (h *Handler) UpdateAccount(c *fiber.Ctx) error {
	const form = "/manage/account"
	input := c.Locals("inputEditAccount").(model.EditEmployeeInput)
	input.ID = helper.CurrentSession(c).User.UserId
	if done, err := h.employeeImage(c, &input, form); done {
		return err
	}
	err := h.api(c).UpdateEmployee(c.UserContext(), &input)
	h.record(c, helper.ActionUpdate, "account", input.ID, err)
	if err != nil {
		return h.failForm(c, err, form)
	}
	return helper.Success(c, constants.EDIT_ACCOUNT_OK, form)
}

func (h *Handler) ChangePasswordPage(c *fiber.Ctx) error {
	return h.render(c, "change_password", "Change password", "account", nil)
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	const form = "/manage/account/password"
	input := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	err := h.api(c).ChangePassword(c.UserContext(), &input)
	h.record(c, helper.ActionUpdate, "password", helper.CurrentSession(c).User.UserId, err)
	if err != nil {
		return h.failForm(c, err, form)
	}
	return helper.Success(c, constants.CHANGE_PASSWORD_OK, "/manage/account")
}
