package handler

import (
	"mime/multipart"

	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

const cinemaResource = "cinema"

func (h *Handler) ListCinemas(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListCinemas(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Cinema]{}
	}
	return h.render(c, "cinema_list", "Cinemas", cinemaResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

func (h *Handler) NewCinema(c *fiber.Ctx) error {
	return h.cinemaForm(c, model.Cinema{})
}

func (h *Handler) EditCinema(c *fiber.Ctx) error {
	cinema, err := h.api(c).GetCinema(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, "/manage/cinema")
	}
	return h.cinemaForm(c, *cinema)
}

func (h *Handler) cinemaForm(c *fiber.Ctx, cinema model.Cinema) error {
	title := "Add cinema"
	if cinema.ID > 0 {
		title = "Edit cinema"
	}
	return h.render(c, "cinema_form", title, cinemaResource, fiber.Map{
		"Cinema":   cinema,
		"Editing":  cinema.ID > 0,
		"Action":   actionPath(cinemaResource, cinema.ID),
		"Geocoder": h.Geocoder.Enabled(),
	})
}

// SaveCinema fills missing coordinates from the address when a geocoder
// is configured, uploads new images and saves the cinema.
func (h *Handler) SaveCinema(c *fiber.Ctx) error {
	input := c.Locals("inputCinema").(model.CinemaInput)
	files, _ := c.Locals("cinemaImages").([]*multipart.FileHeader)
	ctx := c.UserContext()
	api := h.api(c)
	form := formPath(cinemaResource, input.ID)

	if input.Latitude == 0 && input.Longitude == 0 && !utils.IsBlank(input.Address) && h.Geocoder.Enabled() {
		loc, err := h.Geocoder.Geocode(ctx, input.Address+", "+input.City)
		if err != nil {
			h.Log.Warn().Err(err).Str("address", input.Address).Msg("geocoding failed")
		} else {
			input.Latitude, input.Longitude = loc.Latitude, loc.Longitude
		}
	}

	if len(files) > 0 {
		paths, err := helper.UploadAll(ctx, h.uploader(c), helper.FolderCinema, files)
		if err != nil {
			return h.failForm(c, err, form)
		}
		input.Images = paths
	} else if input.ID > 0 {
		current, err := api.GetCinema(ctx, input.ID)
		if err != nil {
			return h.failForm(c, err, form)
		}
		input.Images = current.Images
	}

	var err error
	if input.ID > 0 {
		err = api.UpdateCinema(ctx, &input)
	} else {
		err = api.CreateCinema(ctx, &input)
	}
	return h.finish(c, mutationAction(input.ID), cinemaResource, input.ID, err, "/manage/cinema", form)
}

func (h *Handler) DeleteCinema(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteCinema(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, cinemaResource, id, err, "/manage/cinema", "")
}
