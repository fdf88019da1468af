package validate

import (
	"mime/multipart"
	"strconv"
	"strings"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

// Cinema validates the create form, or the edit form when the route has :id.
func Cinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/cinema/new"
		id, editing := paramId(c)
		if c.Params("id") != "" && !editing {
			return helper.Fail(c, constants.INVALID_ID, "/manage/cinema")
		}
		if editing {
			form = "/manage/cinema/" + strconv.Itoa(id) + "/edit"
		}

		var input model.CinemaInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		input.ID = id
		input.Name = strings.TrimSpace(input.Name)
		c.Locals("inputCinema", input)
		c.Locals("cinemaImages", imageFiles(c, "images"))
		return c.Next()
	}
}

func imageFiles(c *fiber.Ctx, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var out []*multipart.FileHeader
	for _, f := range form.File[field] {
		if f.Size > 0 && f.Filename != "" {
			out = append(out, f)
		}
	}
	return out
}
