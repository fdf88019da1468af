package model

type SeatStatus int

const (
	SeatAvailable SeatStatus = 1
	SeatReserved  SeatStatus = 2
	SeatSold      SeatStatus = 3
)

func (s SeatStatus) String() string {
	switch s {
	case SeatAvailable:
		return "available"
	case SeatReserved:
		return "reserved"
	case SeatSold:
		return "sold"
	}
	return "unknown"
}

type Seat struct {
	ID         int        `json:"id"`
	NumberSeat int        `json:"numberSeat"`
	SeatCode   string     `json:"seatCode"`
	Status     SeatStatus `json:"status"`
}

func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}

// SeatRow is one row of the seat map, keyed by the seat code prefix.
type SeatRow struct {
	Key   string `json:"key"`
	Seats []Seat `json:"seats"`
}
