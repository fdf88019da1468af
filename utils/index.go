package utils

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"cinema_console/client"
	"cinema_console/constants"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FirstMessage turns any error from the API into the single line a toast shows.
func FirstMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.FirstMessage(); msg != "" {
			return msg
		}
		return constants.GENERIC_ERROR
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, client.ErrUnavailable) {
		return constants.API_UNREACHABLE
	}
	return constants.GENERIC_ERROR
}

// IsBlank reports whether a form value is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// QueryInt reads a positive int query value, falling back to def.
func QueryInt(c *fiber.Ctx, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// CalculateGrowth returns the percent change from previous to current.
func CalculateGrowth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}
