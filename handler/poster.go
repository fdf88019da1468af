package handler

import (
	"mime/multipart"

	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

const posterResource = "poster"

func (h *Handler) ListPosters(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListPosters(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Poster]{}
	}
	return h.render(c, "poster_list", "Posters", posterResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

func (h *Handler) NewPoster(c *fiber.Ctx) error {
	return h.posterForm(c, model.Poster{})
}

func (h *Handler) EditPoster(c *fiber.Ctx) error {
	poster, err := h.api(c).GetPoster(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, "/manage/poster")
	}
	return h.posterForm(c, *poster)
}

func (h *Handler) posterForm(c *fiber.Ctx, p model.Poster) error {
	title := "Add poster"
	if p.ID > 0 {
		title = "Edit poster"
	}
	return h.render(c, "poster_form", title, posterResource, fiber.Map{
		"Poster":  p,
		"Editing": p.ID > 0,
		"Action":  actionPath(posterResource, p.ID),
	})
}

// SavePoster uploads the image when one was chosen. An edit without a new
// image keeps the current one.
func (h *Handler) SavePoster(c *fiber.Ctx) error {
	input := c.Locals("inputPoster").(model.PosterInput)
	files, _ := c.Locals("posterImages").([]*multipart.FileHeader)
	ctx := c.UserContext()
	api := h.api(c)
	form := formPath(posterResource, input.ID)

	path, err := h.uploadOne(c, helper.FolderPoster, files)
	if err != nil {
		return h.failForm(c, err, form)
	}
	input.PathImage = path
	if input.PathImage == "" && input.ID > 0 {
		current, err := api.GetPoster(ctx, input.ID)
		if err != nil {
			return h.failForm(c, err, form)
		}
		input.PathImage = current.PathImage
	}

	if input.ID > 0 {
		err = api.UpdatePoster(ctx, &input)
	} else {
		err = api.CreatePoster(ctx, &input)
	}
	return h.finish(c, mutationAction(input.ID), posterResource, input.ID, err, "/manage/poster", form)
}

func (h *Handler) DeletePoster(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeletePoster(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, posterResource, id, err, "/manage/poster", "")
}
