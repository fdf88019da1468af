package helper

import (
	"testing"

	"cinema_console/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seats() []model.Seat {
	return []model.Seat{
		{ID: 4, NumberSeat: 4, SeatCode: "B2", Status: model.SeatAvailable},
		{ID: 1, NumberSeat: 1, SeatCode: "A1", Status: model.SeatAvailable},
		{ID: 3, NumberSeat: 3, SeatCode: "B1", Status: model.SeatReserved},
		{ID: 2, NumberSeat: 2, SeatCode: "A2", Status: model.SeatSold},
	}
}

func TestBuildRowsGroupsBySeatCodePrefix(t *testing.T) {
	rows := BuildRows(seats())
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Key)
	assert.Equal(t, "B", rows[1].Key)
	assert.Equal(t, []int{1, 2}, []int{rows[0].Seats[0].NumberSeat, rows[0].Seats[1].NumberSeat})
	assert.Equal(t, []int{3, 4}, []int{rows[1].Seats[0].NumberSeat, rows[1].Seats[1].NumberSeat})
	assert.Equal(t, []int{1, 2}, ColumnHeaders(rows))
}

func TestBuildRowsMultibyteRowLetters(t *testing.T) {
	rows := BuildRows([]model.Seat{
		{ID: 1, NumberSeat: 2, SeatCode: "Đ2"},
		{ID: 2, NumberSeat: 1, SeatCode: "Đ1"},
		{ID: 3, NumberSeat: 3, SeatCode: "Ă1"},
		{ID: 4, NumberSeat: 4, SeatCode: ""},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, "", rows[0].Key)
	assert.Equal(t, "Ă", rows[1].Key)
	assert.Equal(t, "Đ", rows[2].Key)
	assert.Equal(t, "Đ1", rows[2].Seats[0].SeatCode)
	assert.Equal(t, "Đ2", rows[2].Seats[1].SeatCode)
}

func TestBuildRowsEmpty(t *testing.T) {
	assert.Empty(t, BuildRows(nil))
	assert.Nil(t, ColumnHeaders(nil))
}

func TestCheckSelection(t *testing.T) {
	got, err := CheckSelection(seats(), []int{1, 4, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, got)

	_, err = CheckSelection(seats(), nil)
	assert.ErrorIs(t, err, ErrNoSeatSelected)
	assert.Equal(t, "Please select at least one seat", err.Error())

	_, err = CheckSelection(seats(), []int{1, 2})
	var unavailable *SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Seat A2 is no longer available", err.Error())

	_, err = CheckSelection(seats(), []int{3})
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "B1", unavailable.Code)

	_, err = CheckSelection(seats(), []int{99})
	require.ErrorAs(t, err, &unavailable)
}
