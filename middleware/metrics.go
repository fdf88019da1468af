package middleware

import (
	"errors"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	pageRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cinema_console",
			Name:      "http_requests_total",
			Help:      "Console requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)
)

// RegisterMetrics registers the console collectors. Safe to call multiple times.
func RegisterMetrics() {
	once.Do(func() {
		prometheus.MustRegister(pageRequests)
	})
}

func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		pageRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(statusOf(c, err))).Inc()
		return err
	}
}

// statusOf is the status the error handler will send for err. Errors other
// than *fiber.Error end up as 500.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// MetricsHandler exposes the default prometheus registry.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
