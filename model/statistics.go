package model

type TimeOption int

const (
	TimeDaily   TimeOption = 0
	TimeWeekly  TimeOption = 1
	TimeMonthly TimeOption = 2
	TimeYearly  TimeOption = 3
)

var TimeOptions = []TimeOption{TimeDaily, TimeWeekly, TimeMonthly, TimeYearly}

func (t TimeOption) String() string {
	switch t {
	case TimeDaily:
		return "Daily"
	case TimeWeekly:
		return "Weekly"
	case TimeMonthly:
		return "Monthly"
	case TimeYearly:
		return "Yearly"
	}
	return "Unknown"
}

// AllCinemas is the dashboard filter value that omits CinemaId.
const AllCinemas = -1

type Overview struct {
	CurrPrdTotalRevenue  float64 `json:"currPrdTotalRevenue"`
	CurrPrdTotalBookings int     `json:"currPrdTotalBookings"`
	CurrPrdTotalTickets  int     `json:"currPrdTotalTickets"`
	CurrPrdOccupancyRate float64 `json:"currPrdOccupancyRate"`
	CurrPrdSchedules     int     `json:"currPrdSchedules"`
	PrevPrdTotalRevenue  float64 `json:"prevPrdTotalRevenue"`
	PrevPrdTotalBookings int     `json:"prevPrdTotalBookings"`
	PrevPrdTotalTickets  int     `json:"prevPrdTotalTickets"`
	PrevPrdOccupancyRate float64 `json:"prevPrdOccupancyRate"`
	PrevPrdSchedules     int     `json:"prevPrdSchedules"`
}

type TimeStep struct {
	Label        string  `json:"label"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type TopFilm struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Duration        int     `json:"duration"`
	Category        string  `json:"category"`
	NumberOfVotes   int     `json:"numberOfVotes"`
	Score           float64 `json:"score"`
	TotalRevenue    float64 `json:"totalRevenue"`
	NumberOfTickets int     `json:"numberOfTickets"`
}

type TopCinema struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	City            string  `json:"city"`
	TotalRevenue    float64 `json:"totalRevenue"`
	NumberOfTickets int     `json:"numberOfTickets"`
}

// Metric is one overview card: current value, previous value, growth percent.
type Metric struct {
	Label    string  `json:"label"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Growth   float64 `json:"growth"`
}

type Dashboard struct {
	TimeOption TimeOption  `json:"timeOption"`
	CinemaId   int         `json:"cinemaId"`
	Metrics    []Metric    `json:"metrics"`
	Revenue    []TimeStep  `json:"revenue"`
	RevenueMax float64     `json:"revenueMax"`
	TopFilms   []TopFilm   `json:"topFilms"`
	TopCinemas []TopCinema `json:"topCinemas"`
	Cinemas    []Cinema    `json:"cinemas"`
	// Errors maps a widget name to the message shown in its place.
	Errors map[string]string `json:"errors,omitempty"`
	// Unauthorized is set when the API rejected the operator's token.
	Unauthorized bool `json:"-"`
}
