package helper

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"cinema_console/constants"
	"cinema_console/model"
)

// BuildRows groups seats into rows keyed by the first rune of the seat
// code. Rows come out in key order, seats in number order.
func BuildRows(seats []model.Seat) []model.SeatRow {
	byKey := map[string][]model.Seat{}
	var keys []string
	for _, s := range seats {
		key := ""
		if r, size := utf8.DecodeRuneInString(s.SeatCode); r != utf8.RuneError {
			key = s.SeatCode[:size]
		}
		if _, ok := byKey[key]; !ok {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], s)
	}
	sort.Strings(keys)

	rows := make([]model.SeatRow, 0, len(keys))
	for _, k := range keys {
		row := byKey[k]
		sort.SliceStable(row, func(i, j int) bool { return row[i].NumberSeat < row[j].NumberSeat })
		rows = append(rows, model.SeatRow{Key: k, Seats: row})
	}
	return rows
}

// ColumnHeaders numbers the columns from the first row's length.
func ColumnHeaders(rows []model.SeatRow) []int {
	if len(rows) == 0 {
		return nil
	}
	headers := make([]int, len(rows[0].Seats))
	for i := range headers {
		headers[i] = i + 1
	}
	return headers
}

var ErrNoSeatSelected = errors.New(constants.SELECT_AT_LEAST_ONE)

// SeatUnavailableError reports a selected seat that cannot be booked.
type SeatUnavailableError struct {
	Code string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf(constants.SEAT_NOT_AVAILABLE, e.Code)
}

// CheckSelection validates selected seat numbers against the current seat
// map. Duplicates are dropped; the cleaned list is returned.
func CheckSelection(seats []model.Seat, selected []int) ([]int, error) {
	if len(selected) == 0 {
		return nil, ErrNoSeatSelected
	}
	byNumber := make(map[int]model.Seat, len(seats))
	for _, s := range seats {
		byNumber[s.NumberSeat] = s
	}
	seen := map[int]bool{}
	out := make([]int, 0, len(selected))
	for _, n := range selected {
		if seen[n] {
			continue
		}
		seen[n] = true
		s, ok := byNumber[n]
		if !ok {
			return nil, &SeatUnavailableError{Code: fmt.Sprintf("#%d", n)}
		}
		if !s.Available() {
			return nil, &SeatUnavailableError{Code: s.SeatCode}
		}
		out = append(out, n)
	}
	return out, nil
}
