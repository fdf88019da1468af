package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Handler serves the console pages. API is the shared client; every
// request works on a copy carrying the operator's token.
type Handler struct {
	API *client.Client
	// Uploader overrides the API's /upload endpoint, e.g. with Cloudinary.
	Uploader helper.Uploader
	Geocoder *utils.Geocoder
	Audit    helper.AuditTrail
	Feed     *SeatFeed
	Log      zerolog.Logger
}

// CSRFLocal is the fiber.Ctx local the csrf middleware keeps the form token in.
const CSRFLocal = "csrf"

const (
	auditTimeout       = 3 * time.Second
	socketFetchTimeout = 10 * time.Second
)

var zeroTime time.Time

func New(api *client.Client, log zerolog.Logger) *Handler {
	return &Handler{API: api, Audit: helper.NopAudit{}, Log: log}
}

// api returns the client for the logged-in operator.
func (h *Handler) api(c *fiber.Ctx) *client.Client {
	s := helper.CurrentSession(c)
	if !s.Authenticated() {
		return h.API
	}
	return h.API.WithToken(s.User.Token)
}

func (h *Handler) uploader(c *fiber.Ctx) helper.Uploader {
	if h.Uploader != nil {
		return h.Uploader
	}
	return helper.NewAPIUploader(h.api(c))
}

func (h *Handler) uploadOne(c *fiber.Ctx, folder string, files []*multipart.FileHeader) (string, error) {
	if len(files) == 0 {
		return "", nil
	}
	return h.uploader(c).Upload(c.UserContext(), folder, files[0])
}

// render fills the layout data shared by every page.
func (h *Handler) render(c *fiber.Ctx, view, title, active string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	s := helper.CurrentSession(c)
	data["Title"] = title
	data["Active"] = active
	data["User"] = s.User
	data["Toasts"] = s.PopFlash()
	data["Old"] = s.PopOld()
	data["CSRF"] = c.Locals(CSRFLocal)
	return c.Render(view, data, "layout")
}

// expired ends the session after the API rejected the token.
func (h *Handler) expired(c *fiber.Ctx) error {
	s := helper.CurrentSession(c)
	s.Logout()
	s.AddFlash(model.ToastError, constants.SESSION_EXPIRED)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// fail redirects to `to` with the API's message.
func (h *Handler) fail(c *fiber.Ctx, err error, to string) error {
	if client.IsUnauthorized(err) {
		return h.expired(c)
	}
	h.logAPIError(c, err)
	return helper.Fail(c, utils.FirstMessage(err), to)
}

// failForm sends the operator back to the form with their input.
func (h *Handler) failForm(c *fiber.Ctx, err error, form string) error {
	if client.IsUnauthorized(err) {
		return h.expired(c)
	}
	h.logAPIError(c, err)
	return helper.FailForm(c, utils.FirstMessage(err), form)
}

// loadFailed reports whether a page load error ended the request. Other
// errors become a toast on the page being rendered.
func (h *Handler) loadFailed(c *fiber.Ctx, err error) (bool, error) {
	if client.IsUnauthorized(err) {
		return true, h.expired(c)
	}
	h.logAPIError(c, err)
	helper.CurrentSession(c).AddFlash(model.ToastError, utils.FirstMessage(err))
	return false, nil
}

func (h *Handler) logAPIError(c *fiber.Ctx, err error) {
	var apiErr *client.APIError
	ev := h.Log.Warn()
	if !errors.As(err, &apiErr) {
		ev = h.Log.Error()
	}
	ev.Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("api call failed")
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestId").(string)
	return id
}

// record writes the audit entry for a mutation.
func (h *Handler) record(c *fiber.Ctx, action, resource string, id int, err error) {
	entry := model.AuditEntry{
		Action:    action,
		Resource:  resource,
		Succeeded: err == nil,
	}
	if id > 0 {
		entry.ResourceID = strconv.Itoa(id)
	}
	if s := helper.CurrentSession(c); s.Authenticated() {
		entry.Actor = s.User.EmployeeNo
	}
	if err != nil {
		entry.Message = utils.FirstMessage(err)
	}
	// the request context is gone once the response is written
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.UserContext()), auditTimeout)
	defer cancel()
	h.Audit.Record(ctx, entry)
}

// finish records a mutation and answers with the result toast. On failure
// the operator returns to form, or to list when there is no form.
func (h *Handler) finish(c *fiber.Ctx, action, resource string, id int, err error, list, form string) error {
	h.record(c, action, resource, id, err)
	if err != nil {
		if form != "" {
			return h.failForm(c, err, form)
		}
		return h.fail(c, err, list)
	}
	return helper.Success(c, successMessage(action, resource), list)
}

// successMessage gives e.g. "Add film successfully".
func successMessage(action, resource string) string {
	verb := map[string]string{
		helper.ActionCreate: "Add",
		helper.ActionUpdate: "Edit",
		helper.ActionDelete: "Delete",
	}[action]
	return fmt.Sprintf("%s %s successfully", verb, resource)
}

func inputId(c *fiber.Ctx) int {
	id, _ := c.Locals("inputId").(int)
	return id
}

func listQuery(c *fiber.Ctx) client.ListQuery {
	if q, ok := c.Locals("listQuery").(client.ListQuery); ok {
		return q
	}
	return client.ListQuery{PageNumber: 1, PageSize: client.DefaultPageSize}
}

func formPath(resource string, id int) string {
	if id > 0 {
		return fmt.Sprintf("/manage/%s/%d/edit", resource, id)
	}
	return "/manage/" + resource + "/new"
}

func actionPath(resource string, id int) string {
	if id > 0 {
		return fmt.Sprintf("/manage/%s/%d", resource, id)
	}
	return "/manage/" + resource
}

func mutationAction(id int) string {
	if id > 0 {
		return helper.ActionUpdate
	}
	return helper.ActionCreate
}

// ErrorHandler renders uncaught errors as a page, or as the JSON error
// envelope for API callers.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := constants.GENERIC_ERROR
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}
		if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return utils.ErrorResponse(c, status, message, err)
		}
		c.Status(status)
		if rerr := c.Render("error", fiber.Map{"Title": strconv.Itoa(status), "Status": status, "Message": message, "CSRF": c.Locals(CSRFLocal)}, "layout"); rerr != nil {
			return c.SendString(message)
		}
		return nil
	}
}

// maxPages bounds collect when the API keeps reporting a next page.
const maxPages = 40

// collect reads every page of a listing. A listing cut at maxPages is
// logged on the request logger.
func collect[T any](ctx context.Context, fetch func(context.Context, client.ListQuery) (*model.Page[T], error)) ([]T, error) {
	out, truncated, err := collectPages(ctx, fetch)
	if truncated {
		zerolog.Ctx(ctx).Warn().Int("pages", maxPages).Int("records", len(out)).Msg("listing truncated")
	}
	return out, err
}

// collectPages is collect that also reports whether pages were left unread.
func collectPages[T any](ctx context.Context, fetch func(context.Context, client.ListQuery) (*model.Page[T], error)) ([]T, bool, error) {
	q := client.All()
	var out []T
	for {
		page, err := fetch(ctx, q)
		if err != nil {
			return nil, false, err
		}
		out = append(out, page.Data...)
		if !page.HasNextPage {
			return out, false, nil
		}
		if q.PageNumber >= maxPages {
			return out, true, nil
		}
		q.PageNumber++
	}
}

// find looks a record up on the listing when the API has no detail endpoint.
func find[T any](ctx context.Context, fetch func(context.Context, client.ListQuery) (*model.Page[T], error), match func(T) bool) (*T, error) {
	all, err := collect(ctx, fetch)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if match(all[i]) {
			return &all[i], nil
		}
	}
	return nil, fiber.ErrNotFound
}
