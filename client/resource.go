package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cinema_console/model"
)

func list[T any](ctx context.Context, c *Client, path string, q ListQuery) (*model.Page[T], error) {
	var page model.Page[T]
	if err := c.get(ctx, path, q.Values(), &page); err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return &page, nil
}

func one[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	var res model.Result[T]
	if err := c.get(ctx, path, query, &res); err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	return &res.Data, nil
}

func (c *Client) create(ctx context.Context, path string, body any) error {
	if err := c.send(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

func (c *Client) update(ctx context.Context, path string, body any) error {
	if err := c.send(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("update %s: %w", path, err)
	}
	return nil
}

func (c *Client) remove(ctx context.Context, path string, id int) error {
	if err := c.send(ctx, http.MethodDelete, path, idQuery("Id", id), nil, nil); err != nil {
		return fmt.Errorf("delete %s %d: %w", path, id, err)
	}
	return nil
}

// Films

func (c *Client) ListFilms(ctx context.Context, q ListQuery) (*model.Page[model.Film], error) {
	return list[model.Film](ctx, c, "/film", q)
}

func (c *Client) GetFilm(ctx context.Context, id int) (*model.Film, error) {
	return one[model.Film](ctx, c, "/film/"+strconv.Itoa(id), nil)
}

func (c *Client) CreateFilm(ctx context.Context, in *model.FilmInput) error {
	return c.create(ctx, "/film", in)
}

func (c *Client) UpdateFilm(ctx context.Context, in *model.FilmInput) error {
	return c.update(ctx, "/film", in)
}

func (c *Client) DeleteFilm(ctx context.Context, id int) error {
	return c.remove(ctx, "/film", id)
}

// ToggleFilm flips the film's enable flag.
func (c *Client) ToggleFilm(ctx context.Context, id int) error {
	if err := c.send(ctx, http.MethodPatch, "/film/enable", idQuery("FilmId", id), nil, nil, "schedule"); err != nil {
		return fmt.Errorf("toggle film %d: %w", id, err)
	}
	return nil
}

// Cinemas

func (c *Client) ListCinemas(ctx context.Context, q ListQuery) (*model.Page[model.Cinema], error) {
	return list[model.Cinema](ctx, c, "/cinema", q)
}

func (c *Client) GetCinema(ctx context.Context, id int) (*model.Cinema, error) {
	return one[model.Cinema](ctx, c, "/cinema/"+strconv.Itoa(id), nil)
}

func (c *Client) CreateCinema(ctx context.Context, in *model.CinemaInput) error {
	return c.create(ctx, "/cinema", in)
}

func (c *Client) UpdateCinema(ctx context.Context, in *model.CinemaInput) error {
	return c.update(ctx, "/cinema", in)
}

func (c *Client) DeleteCinema(ctx context.Context, id int) error {
	return c.remove(ctx, "/cinema", id)
}

// Rooms

func (c *Client) ListRooms(ctx context.Context, q ListQuery) (*model.Page[model.Room], error) {
	return list[model.Room](ctx, c, "/Room", q)
}

func (c *Client) CreateRoom(ctx context.Context, in *model.RoomInput) error {
	return c.create(ctx, "/Room", in)
}

func (c *Client) UpdateRoom(ctx context.Context, in *model.RoomInput) error {
	return c.update(ctx, "/Room", in)
}

func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.remove(ctx, "/Room", id)
}

// Categories

func (c *Client) ListCategories(ctx context.Context, q ListQuery) (*model.Page[model.Category], error) {
	return list[model.Category](ctx, c, "/category", q)
}

func (c *Client) CreateCategory(ctx context.Context, in *model.CategoryInput) error {
	return c.create(ctx, "/category", in)
}

func (c *Client) UpdateCategory(ctx context.Context, in *model.CategoryInput) error {
	return c.update(ctx, "/category", in)
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.remove(ctx, "/category", id)
}

// Posters

func (c *Client) ListPosters(ctx context.Context, q ListQuery) (*model.Page[model.Poster], error) {
	return list[model.Poster](ctx, c, "/Poster", q)
}

func (c *Client) GetPoster(ctx context.Context, id int) (*model.Poster, error) {
	return one[model.Poster](ctx, c, "/Poster/"+strconv.Itoa(id), nil)
}

func (c *Client) CreatePoster(ctx context.Context, in *model.PosterInput) error {
	return c.create(ctx, "/Poster", in)
}

func (c *Client) UpdatePoster(ctx context.Context, in *model.PosterInput) error {
	return c.update(ctx, "/Poster", in)
}

func (c *Client) DeletePoster(ctx context.Context, id int) error {
	return c.remove(ctx, "/Poster", id)
}

// Employees and customers

func (c *Client) ListEmployees(ctx context.Context, q ListQuery) (*model.Page[model.Employee], error) {
	return list[model.Employee](ctx, c, "/employee", q)
}

func (c *Client) GetEmployee(ctx context.Context, id int) (*model.Employee, error) {
	return one[model.Employee](ctx, c, "/employee/"+strconv.Itoa(id), nil)
}

func (c *Client) CreateEmployee(ctx context.Context, in *model.CreateEmployeeInput) error {
	return c.create(ctx, "/employee", in)
}

func (c *Client) UpdateEmployee(ctx context.Context, in *model.EditEmployeeInput) error {
	return c.update(ctx, "/employee", in)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.remove(ctx, "/employee", id)
}

func (c *Client) ListCustomers(ctx context.Context, q ListQuery) (*model.Page[model.Customer], error) {
	return list[model.Customer](ctx, c, "/customer", q)
}
