package handler

import (
	"mime/multipart"

	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
)

const employeeResource = "employee"

// imageFile returns the optional single image of a form.
func imageFile(c *fiber.Ctx, field string) ([]*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	if err := helper.CheckImage(fh.Filename); err != nil {
		return nil, err
	}
	return []*multipart.FileHeader{fh}, nil
}

func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	q := listQuery(c)
	page, err := h.api(c).ListEmployees(c.UserContext(), q)
	if err != nil {
		if done, rerr := h.loadFailed(c, err); done {
			return rerr
		}
		page = &model.Page[model.Employee]{}
	}
	return h.render(c, "employee_list", "Employees", employeeResource, fiber.Map{"Page": page, "Query": q.Keyword})
}

func (h *Handler) NewEmployee(c *fiber.Ctx) error {
	return h.employeeForm(c, model.Employee{Gender: true})
}

func (h *Handler) EditEmployee(c *fiber.Ctx) error {
	e, err := h.api(c).GetEmployee(c.UserContext(), inputId(c))
	if err != nil {
		return h.fail(c, err, "/manage/employee")
	}
	return h.employeeForm(c, *e)
}

func (h *Handler) employeeForm(c *fiber.Ctx, e model.Employee) error {
	heading := "Add employee"
	if e.ID > 0 {
		heading = "Edit employee"
	}
	return h.render(c, "employee_form", heading, employeeResource, fiber.Map{
		"Employee": e,
		"Editing":  e.ID > 0,
		"Heading":  heading,
		"Action":   actionPath(employeeResource, e.ID),
		"Cancel":   "/manage/employee",
	})
}

func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	input := c.Locals("inputCreateEmployee").(model.CreateEmployeeInput)
	form := formPath(employeeResource, 0)
	files, err := imageFile(c, "image")
	if err != nil {
		return helper.FailForm(c, constants.UNSUPPORTED_IMAGE, form)
	}
	if input.Image, err = h.uploadOne(c, helper.FolderEmployee, files); err != nil {
		return h.failForm(c, err, form)
	}
	err = h.api(c).CreateEmployee(c.UserContext(), &input)
	return h.finish(c, helper.ActionCreate, employeeResource, 0, err, "/manage/employee", form)
}

func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	input := c.Locals("inputEditEmployee").(model.EditEmployeeInput)
	form := formPath(employeeResource, input.ID)
	if done, err := h.employeeImage(c, &input, form); done {
		return err
	}
	err := h.api(c).UpdateEmployee(c.UserContext(), &input)
	return h.finish(c, helper.ActionUpdate, employeeResource, input.ID, err, "/manage/employee", form)
}

// employeeImage uploads a new avatar or keeps the current one. It reports
// whether the response was already sent.
func (h *Handler) employeeImage(c *fiber.Ctx, input *model.EditEmployeeInput, form string) (bool, error) {
	files, err := imageFile(c, "image")
	if err != nil {
		return true, helper.FailForm(c, constants.UNSUPPORTED_IMAGE, form)
	}
	if len(files) > 0 {
		if input.Image, err = h.uploadOne(c, helper.FolderEmployee, files); err != nil {
			return true, h.failForm(c, err, form)
		}
		return false, nil
	}
	current, err := h.api(c).GetEmployee(c.UserContext(), input.ID)
	if err != nil {
		return true, h.failForm(c, err, form)
	}
	input.Image = current.Image
	return false, nil
}

func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	id := inputId(c)
	err := h.api(c).DeleteEmployee(c.UserContext(), id)
	return h.finish(c, helper.ActionDelete, employeeResource, id, err, "/manage/employee", "")
}
