package handler

import (
	"context"
	"errors"
	"strconv"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

const scheduleResource = "schedule"

func scheduleList(cinemaId int) string {
	if cinemaId <= 0 {
		return "/manage/schedule"
	}
	return "/manage/schedule?cinemaId=" + strconv.Itoa(cinemaId)
}

// timeline loads the rooms and schedules of one cinema.
func timeline(ctx context.Context, api *client.Client, cinemaId int) ([]model.Room, model.Timeline, error) {
	rooms, err := collect(ctx, api.ListRooms)
	if err != nil {
		return nil, model.Timeline{}, err
	}
	rooms = helper.RoomsOfCinema(rooms, cinemaId)
	schedules, err := api.ListSchedules(ctx, cinemaId)
	if err != nil {
		return nil, model.Timeline{}, err
	}
	return rooms, helper.BuildTimeline(rooms, schedules), nil
}

// Schedules shows the timeline of the selected cinema, the first one by
// default.
func (h *Handler) Schedules(c *fiber.Ctx) error {
	ctx := c.UserContext()
	api := h.api(c)
	cinemaId := utils.QueryInt(c, "cinemaId", 0)

	cinemas, err := allCinemas(ctx, api)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
	}
	if cinemaId == 0 && len(cinemas) > 0 {
		cinemaId = cinemas[0].ID
	}

	var tl model.Timeline
	if cinemaId > 0 {
		if _, tl, err = timeline(ctx, api, cinemaId); err != nil {
			if done, rerr := h.loadFailed(c, err); done {
				return rerr
			}
		}
	}
	return h.render(c, "schedule", "Schedules", scheduleResource, fiber.Map{
		"Cinemas":  cinemas,
		"CinemaId": cinemaId,
		"Timeline": tl,
	})
}

// ScheduleEvents returns the timeline as JSON for a calendar widget.
func (h *Handler) ScheduleEvents(c *fiber.Ctx) error {
	cinemaId := utils.QueryInt(c, "cinemaId", 0)
	if cinemaId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ID, nil)
	}
	_, tl, err := timeline(c.UserContext(), h.api(c), cinemaId)
	if err != nil {
		status := fiber.StatusBadGateway
		if client.IsUnauthorized(err) {
			status = fiber.StatusUnauthorized
		}
		return utils.ErrorResponse(c, status, utils.FirstMessage(err), err)
	}
	return c.JSON(tl)
}

// NewSchedule offers the enabled films and the rooms of the cinema.
func (h *Handler) NewSchedule(c *fiber.Ctx) error {
	cinemaId := utils.QueryInt(c, "cinemaId", 0)
	if cinemaId <= 0 {
		return helper.Fail(c, constants.INVALID_ID, "/manage/schedule")
	}
	ctx := c.UserContext()
	api := h.api(c)

	films, err := collect(ctx, api.ListFilms)
	if err != nil {
		return h.fail(c, err, scheduleList(cinemaId))
	}
	rooms, err := collect(ctx, api.ListRooms)
	if err != nil {
		return h.fail(c, err, scheduleList(cinemaId))
	}
	return h.render(c, "schedule_form", "Add schedule", scheduleResource, fiber.Map{
		"CinemaId": cinemaId,
		"Films":    helper.EnabledFilms(films),
		"Rooms":    helper.RoomsOfCinema(rooms, cinemaId),
	})
}

// CreateSchedule adds one screening per start time.
func (h *Handler) CreateSchedule(c *fiber.Ctx) error {
	input := c.Locals("inputSchedule").(model.ScheduleInput)
	cinemaId, _ := strconv.Atoi(c.FormValue("cinemaId"))
	form := "/manage/schedule/new"
	if cinemaId > 0 {
		form += "?cinemaId=" + strconv.Itoa(cinemaId)
	}
	err := h.api(c).CreateSchedules(c.UserContext(), &input)
	return h.finish(c, helper.ActionCreate, scheduleResource, 0, err, scheduleList(cinemaId), form)
}

func (h *Handler) DeleteSchedule(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteSchedule(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, scheduleResource, id, err, c.Get(fiber.HeaderReferer, "/manage/schedule"), "")
}

// ScheduleDetail shows the seat map of a screening.
func (h *Handler) ScheduleDetail(c *fiber.Ctx) error {
	schedule, err := h.api(c).GetSchedule(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, "/manage/schedule")
	}
	rows := helper.BuildRows(schedule.ScheduleSeats)
	return h.render(c, "schedule_detail", schedule.Film, scheduleResource, fiber.Map{
		"Schedule": schedule,
		"Rows":     rows,
		"Columns":  helper.ColumnHeaders(rows),
	})
}

// Reserve books the selected seats for the logged-in employee: reserve,
// create the booking, then mark it paid. The backend owns seat locking;
// the check here only catches seats that are visibly taken.
func (h *Handler) Reserve(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	selected := c.Locals("inputSeats").([]int)
	detail := "/manage/schedule/" + strconv.Itoa(id)
	ctx := c.UserContext()
	api := h.api(c)

	schedule, err := api.GetSchedule(ctx, id)
	if err != nil {
		return h.fail(c, err, detail)
	}
	numbers, err := helper.CheckSelection(schedule.ScheduleSeats, selected)
	if err != nil {
		var unavailable *helper.SeatUnavailableError
		if errors.As(err, &unavailable) || errors.Is(err, helper.ErrNoSeatSelected) {
			return helper.Fail(c, err.Error(), detail)
		}
		return h.fail(c, err, detail)
	}

	reserve := model.ReserveInput{
		NumberSeats: numbers,
		ScheduleId:  id,
		CustomerId:  helper.CurrentSession(c).User.UserId,
	}
	bookingId, err := h.book(ctx, api, reserve)
	h.record(c, helper.ActionReserve, scheduleResource, id, err)
	if err != nil {
		return h.fail(c, err, detail)
	}
	h.Log.Info().Int("schedule_id", id).Int("booking_id", bookingId).Ints("seats", numbers).Msg("seats reserved")

	h.publishSeats(ctx, api, id)
	return helper.Success(c, constants.RESERVE_SUCCESS, detail)
}

func (h *Handler) book(ctx context.Context, api *client.Client, reserve model.ReserveInput) (int, error) {
	if err := api.Reserve(ctx, &reserve); err != nil {
		return 0, err
	}
	var booking model.ReserveInput
	if err := copier.CopyWithOption(&booking, &reserve, copier.Option{DeepCopy: true}); err != nil {
		return 0, err
	}
	booking.PaymentDestinationId = model.PaymentDestinationVNPay
	bookingId, err := api.CreateBooking(ctx, &booking)
	if err != nil {
		return 0, err
	}
	if err := api.UpdateBookingStatus(ctx, bookingId, model.BookingPaid); err != nil {
		return bookingId, err
	}
	return bookingId, nil
}

// publishSeats pushes the refreshed seat map to pages open on the schedule.
func (h *Handler) publishSeats(ctx context.Context, api *client.Client, id int) {
	if h.Feed == nil {
		return
	}
	schedule, err := api.GetSchedule(ctx, id)
	if err != nil {
		h.Log.Warn().Err(err).Int("schedule_id", id).Msg("seat refresh failed")
		return
	}
	if err := h.Feed.Publish(ctx, id, helper.BuildRows(schedule.ScheduleSeats)); err != nil {
		h.Log.Warn().Err(err).Int("schedule_id", id).Msg("seat feed publish failed")
	}
}
