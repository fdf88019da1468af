package helper

import (
	"context"
	"sync"
	"testing"

	"cinema_console/client"
	"cinema_console/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	mu          sync.Mutex
	topCinemaOp []model.TimeOption
	filmsErr    error
}

func (f *fakeStats) Overview(_ context.Context, _ model.TimeOption, _ int) (*model.Overview, error) {
	return &model.Overview{
		CurrPrdTotalRevenue: 150, PrevPrdTotalRevenue: 100,
		CurrPrdTotalBookings: 4, PrevPrdTotalBookings: 0,
		CurrPrdTotalTickets: 0, PrevPrdTotalTickets: 0,
	}, nil
}

func (f *fakeStats) TimeSteps(_ context.Context, _ model.TimeOption, _ int) ([]model.TimeStep, error) {
	return []model.TimeStep{{Label: "Mar", TotalRevenue: 30}, {Label: "Feb", TotalRevenue: 80}, {Label: "Jan", TotalRevenue: 10}}, nil
}

func (f *fakeStats) TopFilms(_ context.Context, _ model.TimeOption, _ int) ([]model.TopFilm, error) {
	if f.filmsErr != nil {
		return nil, f.filmsErr
	}
	return []model.TopFilm{{Name: "Dune"}}, nil
}

func (f *fakeStats) TopCinemas(_ context.Context, opt model.TimeOption) ([]model.TopCinema, error) {
	f.mu.Lock()
	f.topCinemaOp = append(f.topCinemaOp, opt)
	f.mu.Unlock()
	return []model.TopCinema{{Name: "Central"}}, nil
}

func (f *fakeStats) ListCinemas(_ context.Context, _ client.ListQuery) (*model.Page[model.Cinema], error) {
	return &model.Page[model.Cinema]{Data: []model.Cinema{{Name: "Central"}}}, nil
}

func TestLoadDashboard(t *testing.T) {
	src := &fakeStats{}
	d := LoadDashboard(context.Background(), src, model.TimeMonthly, model.AllCinemas)

	assert.Empty(t, d.Errors)
	assert.Equal(t, []string{"Jan", "Feb", "Mar"}, []string{d.Revenue[0].Label, d.Revenue[1].Label, d.Revenue[2].Label})
	assert.Equal(t, 80.0, d.RevenueMax)
	assert.Equal(t, []model.TimeOption{model.TimeYearly}, src.topCinemaOp)

	require.Len(t, d.Metrics, 5)
	assert.Equal(t, 50.0, d.Metrics[0].Growth)
	assert.Equal(t, 100.0, d.Metrics[1].Growth)
	assert.Equal(t, 0.0, d.Metrics[2].Growth)
	assert.Len(t, d.Cinemas, 1)
}

func TestLoadDashboardWidgetFailureIsIsolated(t *testing.T) {
	src := &fakeStats{filmsErr: &client.APIError{Status: 500, Messages: []string{"statistics down"}}}
	d := LoadDashboard(context.Background(), src, model.TimeDaily, 3)

	assert.Equal(t, "statistics down", d.Errors[WidgetTopFilms])
	assert.Nil(t, d.TopFilms)
	assert.Len(t, d.Metrics, 5)
	assert.Len(t, d.TopCinemas, 1)
}

func TestReverseStepsDoesNotMutate(t *testing.T) {
	in := []model.TimeStep{{Label: "b"}, {Label: "a"}}
	out := ReverseSteps(in)
	assert.Equal(t, "a", out[0].Label)
	assert.Equal(t, "b", in[0].Label)
	assert.Empty(t, ReverseSteps(nil))
}
