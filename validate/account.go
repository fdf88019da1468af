package validate

import (
	"strings"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, "/login")
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, "/login")
		}
		input.EmployeeNo = strings.TrimSpace(input.EmployeeNo)
		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const form = "/manage/account/password"
		var input model.ChangePasswordInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if input.NewPassword != input.ConfirmNewPassword {
			return helper.FailForm(c, constants.PASSWORDS_NOT_MATCH, form)
		}
		c.Locals("inputChangePassword", input)
		return c.Next()
	}
}

// EditAccount validates the logged-in employee's own profile form.
func EditAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const form = "/manage/account"
		var input model.EditEmployeeInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		if _, err := model.ParseDate(input.Birthday); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		c.Locals("inputEditAccount", input)
		return c.Next()
	}
}
