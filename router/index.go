package router

import (
	"time"

	"cinema_console/handler"
	"cinema_console/helper"
	"cinema_console/middleware"
	"cinema_console/utils"
	"cinema_console/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// SetupRoutes mounts the console. tokens stores csrf tokens; nil keeps
// them in memory.
func SetupRoutes(app *fiber.App, h *handler.Handler, sessions *helper.Sessions, tokens fiber.Storage, log zerolog.Logger) {
	app.Use(recover.New(), middleware.RequestID(log), middleware.Metrics())
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	web := app.Group("/", logger.New(), middleware.Session(sessions, log), csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "csrf_",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		Expiration:     8 * time.Hour,
		Storage:        tokens,
		ContextKey:     handler.CSRFLocal,
	}))
	web.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/manage/dashboard", fiber.StatusSeeOther) })
	web.Get("/login", middleware.Guest(), h.LoginPage)
	web.Post("/login", limiter.New(limiter.Config{Max: 10, Expiration: time.Minute}), middleware.Guest(), validate.Login(), h.Login)
	web.Post("/logout", middleware.Protected(), h.Logout)

	api := web.Group("/api", middleware.Protected())
	utils.SetupVietmapRoutes(api, h.Geocoder)

	web.Get("/ws/schedule/:id", middleware.Protected(), handler.UpgradeSocket, websocket.New(h.ScheduleSocket))

	manage := web.Group("/manage", middleware.Protected())
	manage.Get("/dashboard", validate.Dashboard(), h.Dashboard)
	manage.Get("/dashboard/data", validate.Dashboard(), h.DashboardData)
	manage.Get("/audit", h.AuditTrail)

	film := manage.Group("/film")
	film.Get("/", validate.ListQuery(), h.ListFilms)
	film.Get("/new", h.NewFilm)
	film.Get("/export", h.Export("film"))
	film.Post("/", validate.Film(), h.SaveFilm)
	film.Get("/:id/edit", validate.GetById("id"), h.EditFilm)
	film.Post("/:id", validate.Film(), h.SaveFilm)
	film.Post("/:id/delete", validate.GetById("id"), h.DeleteFilm)
	film.Post("/:id/toggle", validate.GetById("id"), h.ToggleFilm)

	category := manage.Group("/category")
	category.Get("/", validate.ListQuery(), h.ListCategories)
	category.Get("/new", h.NewCategory)
	category.Post("/", validate.Category(), h.SaveCategory)
	category.Get("/:id/edit", validate.GetById("id"), h.EditCategory)
	category.Post("/:id", validate.Category(), h.SaveCategory)
	category.Post("/:id/delete", validate.GetById("id"), h.DeleteCategory)

	cinema := manage.Group("/cinema")
	cinema.Get("/", validate.ListQuery(), h.ListCinemas)
	cinema.Get("/new", h.NewCinema)
	cinema.Get("/export", h.Export("cinema"))
	cinema.Post("/", validate.Cinema(), h.SaveCinema)
	cinema.Get("/:id/edit", validate.GetById("id"), h.EditCinema)
	cinema.Post("/:id", validate.Cinema(), h.SaveCinema)
	cinema.Post("/:id/delete", validate.GetById("id"), h.DeleteCinema)

	room := manage.Group("/room")
	room.Get("/", validate.ListQuery(), h.ListRooms)
	room.Get("/new", h.NewRoom)
	room.Get("/export", h.Export("room"))
	room.Post("/", validate.Room(), h.SaveRoom)
	room.Get("/:id/edit", validate.GetById("id"), h.EditRoom)
	room.Post("/:id", validate.Room(), h.SaveRoom)
	room.Post("/:id/delete", validate.GetById("id"), h.DeleteRoom)

	poster := manage.Group("/poster")
	poster.Get("/", validate.ListQuery(), h.ListPosters)
	poster.Get("/new", h.NewPoster)
	poster.Post("/", validate.Poster(), h.SavePoster)
	poster.Get("/:id/edit", validate.GetById("id"), h.EditPoster)
	poster.Post("/:id", validate.Poster(), h.SavePoster)
	poster.Post("/:id/delete", validate.GetById("id"), h.DeletePoster)

	employee := manage.Group("/employee")
	employee.Get("/", validate.ListQuery(), h.ListEmployees)
	employee.Get("/new", h.NewEmployee)
	employee.Get("/export", h.Export("employee"))
	employee.Post("/", validate.CreateEmployee(), h.CreateEmployee)
	employee.Get("/:id/edit", validate.GetById("id"), h.EditEmployee)
	employee.Post("/:id", validate.EditEmployee(), h.UpdateEmployee)
	employee.Post("/:id/delete", validate.GetById("id"), h.DeleteEmployee)

	customer := manage.Group("/customer")
	customer.Get("/", validate.ListQuery(), h.ListCustomers)
	customer.Get("/export", h.Export("customer"))
	customer.Get("/:id/bookings", validate.GetById("id"), validate.ListQuery(), h.CustomerBookings)

	booking := manage.Group("/booking")
	booking.Get("/:id", validate.GetById("id"), h.BookingDetail)
	booking.Get("/:id/qr", validate.GetById("id"), h.BookingQR)

	schedule := manage.Group("/schedule")
	schedule.Get("/", h.Schedules)
	schedule.Get("/events", h.ScheduleEvents)
	schedule.Get("/new", h.NewSchedule)
	schedule.Post("/", validate.CreateSchedule(), h.CreateSchedule)
	schedule.Get("/:id", validate.GetById("id"), h.ScheduleDetail)
	schedule.Post("/:id/delete", validate.GetById("id"), h.DeleteSchedule)
	schedule.Post("/:id/reserve", validate.Reserve(), h.Reserve)

	account := manage.Group("/account")
	account.Get("/", h.Account)
	account.Post("/", validate.EditAccount(), h.UpdateAccount)
	account.Get("/password", h.ChangePasswordPage)
	account.Post("/password", validate.ChangePassword(), h.ChangePassword)
}
