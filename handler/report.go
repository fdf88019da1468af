package handler

import (
	"context"
	"fmt"
	"time"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/utils"

	"github.com/gofiber/fiber/v2"
)

// exporters build the XLSX sheet of each exportable resource. The flag
// reports a sheet cut at maxPages.
var exporters = map[string]func(context.Context, *client.Client) (utils.Sheet, bool, error){
	filmResource: func(ctx context.Context, api *client.Client) (utils.Sheet, bool, error) {
		films, truncated, err := collectPages(ctx, api.ListFilms)
		return utils.FilmSheet(films), truncated, err
	},
	cinemaResource: func(ctx context.Context, api *client.Client) (utils.Sheet, bool, error) {
		cinemas, truncated, err := collectPages(ctx, api.ListCinemas)
		return utils.CinemaSheet(cinemas), truncated, err
	},
	roomResource: func(ctx context.Context, api *client.Client) (utils.Sheet, bool, error) {
		rooms, truncated, err := collectPages(ctx, api.ListRooms)
		if err != nil {
			return utils.Sheet{}, false, err
		}
		cinemas, err := allCinemas(ctx, api)
		return utils.RoomSheet(rooms, cinemaNames(cinemas)), truncated, err
	},
	employeeResource: func(ctx context.Context, api *client.Client) (utils.Sheet, bool, error) {
		employees, truncated, err := collectPages(ctx, api.ListEmployees)
		return utils.EmployeeSheet(employees), truncated, err
	},
	customerResource: func(ctx context.Context, api *client.Client) (utils.Sheet, bool, error) {
		customers, truncated, err := collectPages(ctx, api.ListCustomers)
		return utils.CustomerSheet(customers), truncated, err
	},
}

// HeaderExportTruncated marks a workbook missing the records past maxPages.
const HeaderExportTruncated = "X-Export-Truncated"

// Export downloads every record of a resource as an XLSX workbook.
func (h *Handler) Export(resource string) fiber.Handler {
	build := exporters[resource]
	list := "/manage/" + resource
	return func(c *fiber.Ctx) error {
		sheet, truncated, err := build(c.UserContext(), h.api(c))
		if err != nil {
			return h.fail(c, err, list)
		}
		data, err := utils.WriteXLSX(sheet)
		if err != nil {
			h.Log.Error().Err(err).Str("resource", resource).Msg("xlsx export failed")
			return helper.Fail(c, constants.EXPORT_FAILED, list)
		}
		if truncated {
			h.Log.Warn().Str("resource", resource).Int("pages", maxPages).Int("rows", len(sheet.Rows)).Msg("export truncated")
			helper.CurrentSession(c).AddFlash(model.ToastError, fmt.Sprintf(constants.EXPORT_TRUNCATED, maxPages))
			c.Set(HeaderExportTruncated, "true")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Attachment(utils.ExportFilename(resource, time.Now().Format("20060102")))
		return c.Send(data)
	}
}
