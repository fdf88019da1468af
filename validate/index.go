package validate

import (
	"errors"
	"strconv"

	"cinema_console/constants"
	"cinema_console/helper"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// messageFor turns validator errors into the toast shown to the operator.
// A missing field wins over any other problem.
func messageFor(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return constants.FILL_ALL_FIELDS
	}
	msg := ""
	for _, fe := range verrs {
		switch fe.Tag() {
		case "notblank", "required", "gt", "gte", "oneof":
			return constants.FILL_ALL_FIELDS
		case "min":
			if fe.Field() == "Password" && msg == "" {
				msg = constants.PASSWORD_TOO_SHORT
			}
		case "email":
			if msg == "" {
				msg = constants.INVALID_EMAIL
			}
		}
	}
	if msg == "" {
		return constants.FILL_ALL_FIELDS
	}
	return msg
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return helper.Fail(c, constants.INVALID_ID, back(c))
		}
		c.Locals("inputId", id)
		return c.Next()
	}
}

// back is where a rejected request returns when there is no Referer.
func back(c *fiber.Ctx) string {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return ref
	}
	return "/manage/dashboard"
}

// paramId reads the :id route parameter.
func paramId(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil && id > 0
}
