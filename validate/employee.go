package validate

import (
	"strconv"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const form = "/manage/employee/new"
		var input model.CreateEmployeeInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		birthday, err := model.ParseDate(input.Birthday)
		if err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		input.Birthday = birthday.String()
		c.Locals("inputCreateEmployee", input)
		return c.Next()
	}
}

func EditEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramId(c)
		if !ok {
			return helper.Fail(c, constants.INVALID_ID, "/manage/employee")
		}
		form := "/manage/employee/" + strconv.Itoa(id) + "/edit"
		var input model.EditEmployeeInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		birthday, err := model.ParseDate(input.Birthday)
		if err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		input.ID = id
		input.Birthday = birthday.String()
		c.Locals("inputEditEmployee", input)
		return c.Next()
	}
}
