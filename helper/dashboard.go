package helper

import (
	"context"
	"sync"

	"cinema_console/client"
	"cinema_console/model"
	"cinema_console/utils"

	"golang.org/x/sync/errgroup"
)

// StatsSource is the part of the API client the dashboard reads.
type StatsSource interface {
	Overview(ctx context.Context, opt model.TimeOption, cinemaId int) (*model.Overview, error)
	TimeSteps(ctx context.Context, opt model.TimeOption, cinemaId int) ([]model.TimeStep, error)
	TopFilms(ctx context.Context, opt model.TimeOption, cinemaId int) ([]model.TopFilm, error)
	TopCinemas(ctx context.Context, opt model.TimeOption) ([]model.TopCinema, error)
	ListCinemas(ctx context.Context, q client.ListQuery) (*model.Page[model.Cinema], error)
}

const (
	WidgetOverview   = "overview"
	WidgetRevenue    = "revenue"
	WidgetTopFilms   = "topFilms"
	WidgetTopCinemas = "topCinemas"
	WidgetCinemas    = "cinemas"
)

// LoadDashboard fetches every widget concurrently. A failing widget leaves
// its message in Errors and does not affect the others.
func LoadDashboard(ctx context.Context, src StatsSource, opt model.TimeOption, cinemaId int) *model.Dashboard {
	d := &model.Dashboard{TimeOption: opt, CinemaId: cinemaId, Errors: map[string]string{}}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	fail := func(widget string, err error) {
		mu.Lock()
		d.Errors[widget] = utils.FirstMessage(err)
		if client.IsUnauthorized(err) {
			d.Unauthorized = true
		}
		mu.Unlock()
	}

	g.Go(func() error {
		ov, err := src.Overview(ctx, opt, cinemaId)
		if err != nil {
			fail(WidgetOverview, err)
			return nil
		}
		d.Metrics = OverviewMetrics(ov)
		return nil
	})
	g.Go(func() error {
		steps, err := src.TimeSteps(ctx, opt, cinemaId)
		if err != nil {
			fail(WidgetRevenue, err)
			return nil
		}
		d.Revenue = ReverseSteps(steps)
		d.RevenueMax = MaxRevenue(d.Revenue)
		return nil
	})
	g.Go(func() error {
		films, err := src.TopFilms(ctx, opt, cinemaId)
		if err != nil {
			fail(WidgetTopFilms, err)
			return nil
		}
		d.TopFilms = films
		return nil
	})
	g.Go(func() error {
		cinemas, err := src.TopCinemas(ctx, model.TimeYearly)
		if err != nil {
			fail(WidgetTopCinemas, err)
			return nil
		}
		d.TopCinemas = cinemas
		return nil
	})
	g.Go(func() error {
		page, err := src.ListCinemas(ctx, client.All())
		if err != nil {
			fail(WidgetCinemas, err)
			return nil
		}
		d.Cinemas = page.Data
		return nil
	})
	_ = g.Wait()
	return d
}

// OverviewMetrics turns the overview into cards with growth percentages.
func OverviewMetrics(ov *model.Overview) []model.Metric {
	metric := func(label string, curr, prev float64) model.Metric {
		return model.Metric{Label: label, Current: curr, Previous: prev, Growth: utils.CalculateGrowth(curr, prev)}
	}
	return []model.Metric{
		metric("Revenue", ov.CurrPrdTotalRevenue, ov.PrevPrdTotalRevenue),
		metric("Bookings", float64(ov.CurrPrdTotalBookings), float64(ov.PrevPrdTotalBookings)),
		metric("Tickets", float64(ov.CurrPrdTotalTickets), float64(ov.PrevPrdTotalTickets)),
		metric("Occupancy rate", ov.CurrPrdOccupancyRate, ov.PrevPrdOccupancyRate),
		metric("Schedules", float64(ov.CurrPrdSchedules), float64(ov.PrevPrdSchedules)),
	}
}

// ReverseSteps returns the series oldest first.
func ReverseSteps(steps []model.TimeStep) []model.TimeStep {
	out := make([]model.TimeStep, len(steps))
	for i, s := range steps {
		out[len(steps)-1-i] = s
	}
	return out
}

func MaxRevenue(steps []model.TimeStep) float64 {
	var max float64
	for _, s := range steps {
		if s.TotalRevenue > max {
			max = s.TotalRevenue
		}
	}
	return max
}
