package handler

import (
	"mime/multipart"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

const filmResource = "film"

var categoryQuery = client.ListQuery{PageNumber: 1, PageSize: 50}

func (h *Handler) ListFilms(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListFilms(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Film]{}
	}
	return h.render(c, "film_list", "Films", filmResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

func (h *Handler) NewFilm(c *fiber.Ctx) error {
	return h.filmForm(c, model.Film{})
}

func (h *Handler) EditFilm(c *fiber.Ctx) error {
	film, err := h.api(c).GetFilm(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, "/manage/film")
	}
	return h.filmForm(c, *film)
}

func (h *Handler) filmForm(c *fiber.Ctx, film model.Film) error {
	categories, err := h.api(c).ListCategories(c.UserContext(), categoryQuery)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		categories = &model.Page[model.Category]{}
	}
	title := "Add film"
	if film.ID > 0 {
		title = "Edit film"
	}
	return h.render(c, "film_form", title, filmResource, fiber.Map{
		"Film":       film,
		"Editing":    film.ID > 0,
		"Action":     actionPath(filmResource, film.ID),
		"Categories": categories.Data,
	})
}

// SaveFilm creates or updates a film. New images are uploaded first; an
// edit without new images keeps the current gallery.
func (h *Handler) SaveFilm(c *fiber.Ctx) error {
	input := c.Locals("inputFilm").(model.FilmInput)
	files, _ := c.Locals("filmImages").([]*multipart.FileHeader)
	ctx := c.UserContext()
	api := h.api(c)
	form := formPath(filmResource, input.ID)

	var paths []string
	if len(files) > 0 && (input.ID == 0 || input.ReplaceImages) {
		uploaded, err := helper.UploadAll(ctx, h.uploader(c), helper.FolderFilm, files)
		if err != nil {
			return h.failForm(c, err, form)
		}
		paths = uploaded
	} else if input.ID > 0 {
		current, err := api.GetFilm(ctx, input.ID)
		if err != nil {
			return h.failForm(c, err, form)
		}
		paths = current.Image
		input.Poster = current.Poster
	}
	input.FileImages = fileImages(paths)
	if input.Poster == "" && len(paths) > 0 {
		input.Poster = paths[0]
	}

	var err error
	if input.ID > 0 {
		err = api.UpdateFilm(ctx, &input)
	} else {
		err = api.CreateFilm(ctx, &input)
	}
	return h.finish(c, mutationAction(input.ID), filmResource, input.ID, err, "/manage/film", form)
}

func fileImages(paths []string) []model.FileImage {
	out := make([]model.FileImage, 0, len(paths))
	for _, p := range paths {
		out = append(out, model.FileImage{NameFile: p, TypeFile: model.FileTypeImage})
	}
	return out
}

func (h *Handler) DeleteFilm(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteFilm(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, filmResource, id, err, "/manage/film", "")
}

// ToggleFilm shows or hides a film in the booking site.
func (h *Handler) ToggleFilm(c *fiber.Ctx) error {
	id := inputId(c)
	ctx := c.UserContext()
	api := h.api(c)
	film, err := api.GetFilm(ctx, id)
	if err != nil {
		return h.fail(c, err, "/manage/film")
	}
	err = api.ToggleFilm(ctx, id)
	h.record(c, helper.ActionToggle, filmResource, id, err)
	if err != nil {
		return h.fail(c, err, "/manage/film")
	}
	msg := constants.SHOW_FILM_OK
	if film.Enable {
		msg = constants.HIDE_FILM_OK
	}
	return helper.Success(c, msg, c.Get(fiber.HeaderReferer, "/manage/film"))
}
