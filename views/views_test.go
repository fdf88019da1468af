package views

import (
	"bytes"
	"testing"

	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded(t *testing.T) *Engine {
	t.Helper()
	e := New()
	require.NoError(t, e.Load())
	return e
}

func TestRenderLoginWithLayout(t *testing.T) {
	e := loaded(t)
	var buf bytes.Buffer
	err := e.Render(&buf, "login", fiber.Map{
		"Title":  "Log in",
		"Toasts": []model.Toast{{Kind: model.ToastError, Message: "Incorrect username or password"}},
		"Old":    map[string]string{"employeeNo": "E001"},
	}, "layout")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>Log in | Cinema console</title>")
	assert.Contains(t, out, "Incorrect username or password")
	assert.Contains(t, out, `value="E001"`)
	assert.NotContains(t, out, "<nav>")
}

func TestRenderListPager(t *testing.T) {
	e := loaded(t)
	page := &model.Page[model.Category]{
		Data:            []model.Category{{DTO: model.DTO{ID: 4}, Name: "Drama"}},
		CurrentPage:     2,
		TotalPages:      3,
		HasPreviousPage: true,
		HasNextPage:     true,
	}
	var buf bytes.Buffer
	err := e.Render(&buf, "category_list", fiber.Map{
		"Title": "Categories", "Active": "category",
		"User":  &model.UserAuthenticate{EmployeeNo: "E001"},
		"Page":  page, "Query": "dra",
	}, "layout")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Drama")
	assert.Contains(t, out, `href="/manage/category?page=1&amp;q=dra"`)
	assert.Contains(t, out, `href="/manage/category?page=3&amp;q=dra"`)
	assert.Contains(t, out, `action="/manage/category/4/delete"`)
}

func TestRenderSeatMapDisablesTakenSeats(t *testing.T) {
	e := loaded(t)
	rows := []model.SeatRow{{Key: "A", Seats: []model.Seat{
		{NumberSeat: 1, SeatCode: "A1", Status: model.SeatAvailable},
		{NumberSeat: 2, SeatCode: "A2", Status: model.SeatSold},
	}}}
	var buf bytes.Buffer
	err := e.Render(&buf, "schedule_detail", fiber.Map{
		"Schedule": &model.Schedule{ID: 9, Film: "Dune"},
		"Rows":     rows,
		"Columns":  []int{1, 2},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `class="seat sold"`)
	assert.Contains(t, out, `value="2" disabled`)
	assert.NotContains(t, out, `value="1" disabled`)
}

func TestRenderUnknownView(t *testing.T) {
	e := loaded(t)
	assert.Error(t, e.Render(&bytes.Buffer{}, "missing", nil))
}

func TestOld(t *testing.T) {
	values := map[string]string{"name": "typed"}
	assert.Equal(t, "typed", old(values, "name", "stored"))
	assert.Equal(t, "stored", old(nil, "name", "stored"))
	assert.Equal(t, "", old(nil, "duration", 0))
	assert.Equal(t, "120", old(nil, "duration", 120))
	assert.Equal(t, "10.5", old(nil, "lat", 10.5))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "1,234,567", formatThousands(1234567))
	assert.Equal(t, "-1,000", formatThousands(-1000))
	assert.Equal(t, 50, barWidth(50, 100))
	assert.Equal(t, 0, barWidth(10, 0))
	assert.Equal(t, "/x?cinemaId=3&page=2", pageURL("/x", "", 2, map[string]any{"cinemaId": 3}))
}
