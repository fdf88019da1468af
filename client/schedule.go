package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"cinema_console/model"
)

// ListSchedules returns every schedule of a cinema.
func (c *Client) ListSchedules(ctx context.Context, cinemaId int) ([]model.Schedule, error) {
	var res model.Result[[]model.Schedule]
	path := "/schedule/cinema/" + strconv.Itoa(cinemaId)
	if err := c.get(ctx, path, nil, &res); err != nil {
		return nil, fmt.Errorf("list schedules of cinema %d: %w", cinemaId, err)
	}
	return res.Data, nil
}

// GetSchedule returns a schedule with its seat map. It is never cached
// since seat states change under us.
func (c *Client) GetSchedule(ctx context.Context, id int) (*model.Schedule, error) {
	var res model.Result[model.Schedule]
	raw, err := c.do(ctx, http.MethodGet, c.baseURL, "/schedule/"+strconv.Itoa(id), nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("get schedule %d: %w", id, err)
	}
	if err := decode(raw, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) CreateSchedules(ctx context.Context, in *model.ScheduleInput) error {
	if err := c.send(ctx, http.MethodPost, "/schedule/muli-time-slots", nil, in, nil); err != nil {
		return fmt.Errorf("create schedules: %w", err)
	}
	return nil
}

func (c *Client) DeleteSchedule(ctx context.Context, id int) error {
	return c.remove(ctx, "/schedule", id)
}

// Bookings

func (c *Client) ListBookings(ctx context.Context, q ListQuery, customerId, cinemaId int) (*model.Page[model.Booking], error) {
	if q.Extra == nil {
		q.Extra = map[string][]string{}
	}
	if customerId > 0 {
		q.Extra.Set("CustomerId", strconv.Itoa(customerId))
	}
	if cinemaId > 0 {
		q.Extra.Set("CinemaId", strconv.Itoa(cinemaId))
	}
	return list[model.Booking](ctx, c, "/booking", q)
}

func (c *Client) GetBooking(ctx context.Context, id int) (*model.BookingInformation, error) {
	return one[model.BookingInformation](ctx, c, "/booking/"+strconv.Itoa(id), nil)
}

// Reserve holds seats for a customer.
func (c *Client) Reserve(ctx context.Context, in *model.ReserveInput) error {
	if err := c.send(ctx, http.MethodPost, "/reserve", nil, in, nil, "schedule"); err != nil {
		return fmt.Errorf("reserve seats: %w", err)
	}
	return nil
}

// CreateBooking books reserved seats and returns the new booking id.
func (c *Client) CreateBooking(ctx context.Context, in *model.ReserveInput) (int, error) {
	var res model.Result[struct {
		ID int `json:"id"`
	}]
	if err := c.send(ctx, http.MethodPost, "/booking", nil, in, &res, "schedule"); err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}
	return res.Data.ID, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status model.BookingStatus) error {
	body := model.BookingStatusInput{ID: id, BookingStatus: status}
	if err := c.send(ctx, http.MethodPatch, "/booking/update-status", nil, body, nil, "schedule"); err != nil {
		return fmt.Errorf("update booking %d status: %w", id, err)
	}
	return nil
}
