package helper

import (
	"context"
	"fmt"
	"time"

	"cinema_console/model"
	"cinema_console/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

type ReportSender interface {
	SendOverviewReport(to []string, data utils.OverviewReportData) error
}

// DailyReport mails the monthly overview once a day.
type DailyReport struct {
	scheduler  gocron.Scheduler
	svc        *ServiceAccount
	mailer     ReportSender
	recipients []string
	log        zerolog.Logger
}

// StartDailyReport schedules the report at "HH:MM" local time.
func StartDailyReport(at string, svc *ServiceAccount, mailer ReportSender, recipients []string, log zerolog.Logger) (*DailyReport, error) {
	var hour, minute uint
	if _, err := fmt.Sscanf(at, "%d:%d", &hour, &minute); err != nil {
		return nil, fmt.Errorf("report time %q: %w", at, err)
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return nil, err
	}
	r := &DailyReport{
		scheduler:  s,
		svc:        svc,
		mailer:     mailer,
		recipients: recipients,
		log:        log.With().Str("job", "daily-report").Logger(),
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(r.Run),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	s.Start()
	r.log.Info().Str("at", at).Msg("daily report scheduled")
	return r, nil
}

func (r *DailyReport) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api, err := r.svc.Client(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("report skipped")
		return
	}
	d := LoadDashboard(ctx, api, model.TimeMonthly, model.AllCinemas)
	if d.Unauthorized {
		// token revoked before its exp
		r.svc.Invalidate()
		if api, err = r.svc.Client(ctx); err != nil {
			r.log.Warn().Err(err).Msg("report skipped")
			return
		}
		d = LoadDashboard(ctx, api, model.TimeMonthly, model.AllCinemas)
	}
	if err := r.mailer.SendOverviewReport(r.recipients, utils.BuildOverviewReport(d, time.Now())); err != nil {
		r.log.Error().Err(err).Msg("report failed")
	}
}

func (r *DailyReport) Stop() {
	if r == nil {
		return
	}
	if err := r.scheduler.Shutdown(); err != nil {
		r.log.Warn().Err(err).Msg("report scheduler shutdown")
	}
}
