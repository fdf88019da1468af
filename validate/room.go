package validate

import (
	"strconv"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

func Room() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/room/new"
		id, editing := paramId(c)
		if c.Params("id") != "" && !editing {
			return helper.Fail(c, constants.INVALID_ID, "/manage/room")
		}
		if editing {
			form = "/manage/room/" + strconv.Itoa(id) + "/edit"
		}

		var input model.RoomInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if input.Status == 0 {
			input.Status = model.RoomActive
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		if input.NumberSeat == 0 {
			input.NumberSeat = input.NumberRow * input.NumberColumn
		}
		input.ID = id
		c.Locals("inputRoom", input)
		return c.Next()
	}
}

func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/category/new"
		id, editing := paramId(c)
		if c.Params("id") != "" && !editing {
			return helper.Fail(c, constants.INVALID_ID, "/manage/category")
		}
		if editing {
			form = "/manage/category/" + strconv.Itoa(id) + "/edit"
		}

		var input model.CategoryInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, messageFor(err), form)
		}
		input.ID = id
		c.Locals("inputCategory", input)
		return c.Next()
	}
}

// Poster requires an image on create; on edit the image is optional.
func Poster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/poster/new"
		id, editing := paramId(c)
		if c.Params("id") != "" && !editing {
			return helper.Fail(c, constants.INVALID_ID, "/manage/poster")
		}
		if editing {
			form = "/manage/poster/" + strconv.Itoa(id) + "/edit"
		}

		var input model.PosterInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		files := imageFiles(c, "image")
		if !editing && len(files) == 0 {
			return helper.FailForm(c, constants.SELECT_IMAGES, form)
		}
		for _, f := range files {
			if err := helper.CheckImage(f.Filename); err != nil {
				return helper.FailForm(c, constants.UNSUPPORTED_IMAGE, form)
			}
		}
		input.ID = id
		c.Locals("inputPoster", input)
		c.Locals("posterImages", files)
		return c.Next()
	}
}
