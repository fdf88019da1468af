package helper

import (
	"context"
	"time"

	"cinema_console/model"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DashboardWarmer refreshes the cached dashboard reads every five minutes
// so the first operator of the day does not wait on the statistics API.
type DashboardWarmer struct {
	scheduler *cron.Cron
	svc       *ServiceAccount
	log       zerolog.Logger
}

func StartDashboardWarmer(svc *ServiceAccount, log zerolog.Logger) (*DashboardWarmer, error) {
	w := &DashboardWarmer{
		scheduler: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		svc:       svc,
		log:       log.With().Str("job", "dashboard-warmer").Logger(),
	}
	if _, err := w.scheduler.AddFunc("*/5 * * * *", w.Run); err != nil {
		return nil, err
	}
	w.scheduler.Start()
	w.log.Info().Msg("dashboard warmer started (every 5 minutes)")
	return w, nil
}

func (w *DashboardWarmer) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api, err := w.svc.Client(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("warm skipped")
		return
	}
	for _, opt := range model.TimeOptions {
		d := LoadDashboard(ctx, api, opt, model.AllCinemas)
		if d.Unauthorized {
			w.svc.Invalidate()
			w.log.Warn().Msg("service token rejected, logging in again next run")
			return
		}
		if len(d.Errors) > 0 {
			w.log.Warn().Str("timeOption", opt.String()).Interface("errors", d.Errors).Msg("warm incomplete")
		}
	}
	w.log.Debug().Msg("dashboard cache warmed")
}

func (w *DashboardWarmer) Stop() {
	if w == nil {
		return
	}
	<-w.scheduler.Stop().Done()
	w.log.Info().Msg("dashboard warmer stopped")
}
