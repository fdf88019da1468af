package validate

import (
	"strconv"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

// Film validates the film form. Create checks images first and fields
// last; edit checks fields first and images only when they are replaced.
func Film() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/film/new"
		id, editing := paramId(c)
		if c.Params("id") != "" && !editing {
			return helper.Fail(c, constants.INVALID_ID, "/manage/film")
		}
		if editing {
			form = "/manage/film/" + strconv.Itoa(id) + "/edit"
		}

		var input model.FilmInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		files := imageFiles(c, "images")
		needImages := !editing || input.ReplaceImages

		if !editing && len(files) == 0 {
			return helper.FailForm(c, constants.SELECT_IMAGES, form)
		}
		if editing {
			if err := validate.Struct(input); err != nil {
				return helper.FailForm(c, messageFor(err), form)
			}
		}
		start, errStart := model.ParseDate(input.StartDate)
		end, errEnd := model.ParseDate(input.EndDate)
		if errStart != nil || errEnd != nil {
			return helper.FailForm(c, constants.SELECT_DATES, form)
		}
		if end.Before(start.Time) {
			return helper.FailForm(c, constants.END_BEFORE_START, form)
		}
		if !editing {
			if err := validate.Struct(input); err != nil {
				return helper.FailForm(c, messageFor(err), form)
			}
		}
		if needImages && len(files) == 0 {
			return helper.FailForm(c, constants.SELECT_IMAGES, form)
		}
		for _, f := range files {
			if err := helper.CheckImage(f.Filename); err != nil {
				return helper.FailForm(c, constants.UNSUPPORTED_IMAGE, form)
			}
		}

		input.ID = id
		input.StartDate = start.String()
		input.EndDate = end.String()
		c.Locals("inputFilm", input)
		c.Locals("filmImages", files)
		return c.Next()
	}
}
