package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema_console/client"
	"cinema_console/config"
	"cinema_console/database"
	"cinema_console/handler"
	"cinema_console/helper"
	"cinema_console/middleware"
	"cinema_console/router"
	"cinema_console/utils"
	"cinema_console/views"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := utils.NewLogger(settings.LogLevel, settings.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := database.ConnectRedis(ctx, settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	db, err := database.ConnectDB(settings.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("audit database unavailable")
	}

	client.RegisterMetrics()
	middleware.RegisterMetrics()

	opts := client.Options{
		BaseURL:     settings.APIBaseURL,
		IdentityURL: settings.IdentityURL,
		Timeout:     settings.APITimeout,
		Redis:       rdb,
		CacheTTL:    settings.CacheTTL,
		Logger:      log,
	}
	if settings.RateLimit > 0 {
		opts.Limiter = rate.NewLimiter(rate.Limit(settings.RateLimit), settings.RateBurst)
	}
	api := client.New(opts)

	h := handler.New(api, log)
	h.Geocoder = utils.NewGeocoder(settings.VietmapAPIKey)
	h.Feed = handler.NewSeatFeed(rdb, log)
	if db != nil {
		h.Audit = helper.NewGormAudit(db, log)
	}
	if settings.CloudinaryEnabled() {
		cld, err := helper.InitCloudinary(settings.CloudinaryCloudName, settings.CloudinaryAPIKey, settings.CloudinaryAPISecret)
		if err != nil {
			log.Fatal().Err(err).Msg("cloudinary configuration")
		}
		h.Uploader = helper.NewCloudinaryUploader(cld)
		log.Info().Msg("uploading images to cloudinary")
	}
	go h.Feed.Run(ctx)

	sessions := helper.NewSessions(database.Storage(rdb, database.SessionPrefix), settings.SessionTTL, settings.CookieSecure)

	var (
		warmer *helper.DashboardWarmer
		report *helper.DailyReport
	)
	if settings.ServiceAccountEnabled() {
		svc := helper.NewServiceAccount(api, settings.ServiceEmployeeNo, settings.ServicePassword)
		if rdb != nil {
			if warmer, err = helper.StartDashboardWarmer(svc, log); err != nil {
				log.Error().Err(err).Msg("dashboard warmer not started")
			}
		}
		if settings.SMTP.Enabled() && len(settings.ReportRecipients) > 0 {
			mailer := utils.NewMailer(settings.SMTP.Host, settings.SMTP.Port, settings.SMTP.Username, settings.SMTP.Password, settings.SMTP.From, log)
			if report, err = helper.StartDailyReport(settings.ReportAt, svc, mailer, settings.ReportRecipients, log); err != nil {
				log.Error().Err(err).Msg("daily report not scheduled")
			}
		}
	} else {
		log.Info().Msg("service account not configured, background jobs disabled")
	}

	engine := views.New()
	if err := engine.Load(); err != nil {
		log.Fatal().Err(err).Msg("templates")
	}
	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          handler.ErrorHandler(log),
		BodyLimit:             100 * 1024 * 1024,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})
	router.SetupRoutes(app, h, sessions, database.Storage(rdb, database.CSRFPrefix), log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", settings.Port).Str("api", settings.APIBaseURL).Msg("cinema console listening")
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}

	warmer.Stop()
	report.Stop()
	if rdb != nil {
		_ = rdb.Close()
	}
}
