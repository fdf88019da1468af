package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"cinema_console/model"
)

func statsQuery(key string, value int, cinemaId int) url.Values {
	v := url.Values{}
	v.Set(key, strconv.Itoa(value))
	if cinemaId != model.AllCinemas && cinemaId > 0 {
		v.Set("CinemaId", strconv.Itoa(cinemaId))
	}
	return v
}

func (c *Client) Overview(ctx context.Context, opt model.TimeOption, cinemaId int) (*model.Overview, error) {
	return one[model.Overview](ctx, c, "/statistics/overview", statsQuery("TimeOption", int(opt), cinemaId))
}

// TimeSteps returns revenue per period, newest first as the API sends it.
func (c *Client) TimeSteps(ctx context.Context, opt model.TimeOption, cinemaId int) ([]model.TimeStep, error) {
	var res model.Result[[]model.TimeStep]
	if err := c.get(ctx, "/statistics/time-step", statsQuery("TimeStep", int(opt), cinemaId), &res); err != nil {
		return nil, fmt.Errorf("time steps: %w", err)
	}
	return res.Data, nil
}

func (c *Client) TopFilms(ctx context.Context, opt model.TimeOption, cinemaId int) ([]model.TopFilm, error) {
	var res model.Result[[]model.TopFilm]
	if err := c.get(ctx, "/statistics/film", statsQuery("TimeOption", int(opt), cinemaId), &res); err != nil {
		return nil, fmt.Errorf("top films: %w", err)
	}
	return res.Data, nil
}

func (c *Client) TopCinemas(ctx context.Context, opt model.TimeOption) ([]model.TopCinema, error) {
	var res model.Result[[]model.TopCinema]
	if err := c.get(ctx, "/statistics/cinema", statsQuery("TimeOption", int(opt), model.AllCinemas), &res); err != nil {
		return nil, fmt.Errorf("top cinemas: %w", err)
	}
	return res.Data, nil
}
