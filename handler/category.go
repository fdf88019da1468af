package handler

import (
	"errors"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

const categoryResource = "category"

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListCategories(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Category]{}
	}
	return h.render(c, "category_list", "Categories", categoryResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

func (h *Handler) NewCategory(c *fiber.Ctx) error {
	return h.categoryForm(c, model.Category{})
}

// EditCategory finds the category on the listing; the API has no single
// category endpoint.
func (h *Handler) EditCategory(c *fiber.Ctx) error {
	id := inputId(c)
	cat, err := find(c.UserContext(), h.api(c).ListCategories, func(v model.Category) bool { return v.ID == id })
	if errors.Is(err, fiber.ErrNotFound) {
		return helper.Fail(c, constants.INVALID_ID, "/manage/category")
	}
	if err != nil {
		return h.fail(c, err, "/manage/category")
	}
	return h.categoryForm(c, *cat)
}

func (h *Handler) categoryForm(c *fiber.Ctx, cat model.Category) error {
	title := "Add category"
	if cat.ID > 0 {
		title = "Edit category"
	}
	return h.render(c, "category_form", title, categoryResource, fiber.Map{
		"Category": cat,
		"Editing":  cat.ID > 0,
		"Action":   actionPath(categoryResource, cat.ID),
	})
}

func (h *Handler) SaveCategory(c *fiber.Ctx) error {
	input := c.Locals("inputCategory").(model.CategoryInput)
	var err error
	if input.ID > 0 {
		err = h.api(c).UpdateCategory(c.UserContext(), &input)
	} else {
		err = h.api(c).CreateCategory(c.UserContext(), &input)
	}
	return h.finish(c, mutationAction(input.ID), categoryResource, input.ID, err, "/manage/category", formPath(categoryResource, input.ID))
}

func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteCategory(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, categoryResource, id, err, "/manage/category", "")
}
