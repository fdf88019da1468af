package validate

import (
	"strconv"
	"strings"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

// CreateSchedule checks duration, then start times, then the rest.
func CreateSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := "/manage/schedule/new"
		if cinemaId := c.FormValue("cinemaId"); cinemaId != "" {
			form += "?cinemaId=" + cinemaId
		}
		var input model.ScheduleInput
		if err := c.BodyParser(&input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		if input.Minutes > 59 {
			return helper.FailForm(c, constants.INVALID_DURATION, form)
		}
		duration, ok := helper.ScheduleDuration(input.Hours, input.Minutes)
		if !ok {
			return helper.FailForm(c, constants.INVALID_DURATION, form)
		}
		starts, msg := helper.NormalizeStartTimes(input.StartTimes)
		if msg != "" {
			return helper.FailForm(c, msg, form)
		}
		if err := validate.Struct(input); err != nil {
			return helper.FailForm(c, constants.FILL_ALL_FIELDS, form)
		}
		input.Duration = duration
		input.StartTimes = starts
		c.Locals("inputSchedule", input)
		return c.Next()
	}
}

// Reserve parses the selected seat numbers of a schedule.
func Reserve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramId(c)
		if !ok {
			return helper.Fail(c, constants.INVALID_ID, "/manage/schedule")
		}
		detail := "/manage/schedule/" + strconv.Itoa(id)

		var form struct {
			Seats []string `form:"seats"`
		}
		if err := c.BodyParser(&form); err != nil {
			return helper.Fail(c, constants.SELECT_AT_LEAST_ONE, detail)
		}
		var seats []int
		for _, raw := range form.Seats {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return helper.Fail(c, constants.SELECT_AT_LEAST_ONE, detail)
			}
			seats = append(seats, n)
		}
		if len(seats) == 0 {
			return helper.Fail(c, constants.SELECT_AT_LEAST_ONE, detail)
		}
		c.Locals("inputId", id)
		c.Locals("inputSeats", seats)
		return c.Next()
	}
}
