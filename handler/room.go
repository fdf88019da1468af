package handler

import (
	"context"
	"errors"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

const roomResource = "room"

var roomStatuses = []model.RoomStatus{model.RoomActive, model.RoomMaintenance, model.RoomClosed}

func cinemaNames(cinemas []model.Cinema) map[int]string {
	names := make(map[int]string, len(cinemas))
	for _, c := range cinemas {
		names[c.ID] = c.Name
	}
	return names
}

func allCinemas(ctx context.Context, api *client.Client) ([]model.Cinema, error) {
	return collect(ctx, api.ListCinemas)
}

func (h *Handler) ListRooms(c *fiber.Ctx) error {
	q := listQuery(c)
	ctx := c.UserContext()
	api := h.api(c)
	page, err := api.ListRooms(ctx, q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Room]{}
	}
	cinemas, err := allCinemas(ctx, api)
	if err != nil {
		h.Log.Warn().Err(err).Msg("cinema names unavailable")
	}
	return h.render(c, "room_list", "Rooms", roomResource, fiber.Map{
		"Page":        page,
		"Query":       q.Keyword,
		"CinemaNames": cinemaNames(cinemas),
	})
}

func (h *Handler) NewRoom(c *fiber.Ctx) error {
	room := model.Room{Status: model.RoomActive}
	if id := utils.QueryInt(c, "cinemaId", 0); id > 0 {
		room.CinemaId = id
	}
	return h.roomForm(c, room)
}

func (h *Handler) EditRoom(c *fiber.Ctx) error {
	id := inputId(c)
	room, err := find(c.UserContext(), h.api(c).ListRooms, func(r model.Room) bool { return r.ID == id })
	if errors.Is(err, fiber.ErrNotFound) {
		return helper.Fail(c, constants.INVALID_ID, "/manage/room")
	}
	if err != nil {
		return h.fail(c, err, "/manage/room")
	}
	return h.roomForm(c, *room)
}

func (h *Handler) roomForm(c *fiber.Ctx, room model.Room) error {
	cinemas, err := allCinemas(c.UserContext(), h.api(c))
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
	}
	title := "Add room"
	if room.ID > 0 {
		title = "Edit room"
	}
	return h.render(c, "room_form", title, roomResource, fiber.Map{
		"Room":     room,
		"Editing":  room.ID > 0,
		"Action":   actionPath(roomResource, room.ID),
		"Cinemas":  cinemas,
		"Statuses": roomStatuses,
	})
}

func (h *Handler) SaveRoom(c *fiber.Ctx) error {
	input := c.Locals("inputRoom").(model.RoomInput)
	var err error
	if input.ID > 0 {
		err = h.api(c).UpdateRoom(c.UserContext(), &input)
	} else {
		err = h.api(c).CreateRoom(c.UserContext(), &input)
	}
	return h.finish(c, mutationAction(input.ID), roomResource, input.ID, err, "/manage/room", formPath(roomResource, input.ID))
}

func (h *Handler) DeleteRoom(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteRoom(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, roomResource, id, err, "/manage/room", "")
}
