package model

type Schedule struct {
	ID            int           `json:"id"`
	Duration      int           `json:"duration"`
	Description   string        `json:"description"`
	StartTime     LocalDateTime `json:"startTime"`
	EndTime       LocalDateTime `json:"endTime"`
	Film          string        `json:"film"`
	Room          string        `json:"room"`
	Price         float64       `json:"price"`
	FilmId        int           `json:"filmId"`
	RoomId        int           `json:"roomId"`
	ScheduleSeats []Seat        `json:"scheduleSeats,omitempty"`
}

type ScheduleInput struct {
	FilmId      int      `json:"filmId" form:"filmId" validate:"gt=0"`
	RoomId      int      `json:"roomId" form:"roomId" validate:"gt=0"`
	Duration    int      `json:"duration" form:"-"`
	Hours       int      `json:"-" form:"hours"`
	Minutes     int      `json:"-" form:"minutes" validate:"gte=0,lte=59"`
	Description string   `json:"description" form:"description" validate:"notblank"`
	StartTimes  []string `json:"startTimes" form:"startTimes"`
	Price       float64  `json:"price" form:"price" validate:"gt=0"`
}

// ReserveInput is sent to /reserve and, with a payment destination, to /booking.
type ReserveInput struct {
	NumberSeats          []int  `json:"numberSeats"`
	ScheduleId           int    `json:"scheduleId"`
	CustomerId           int    `json:"customerId"`
	PaymentDestinationId string `json:"paymentDestinationId,omitempty"`
}

// Resource and Event are the resource-timeline shapes a calendar widget takes.
type Resource struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Event struct {
	ID         int           `json:"id"`
	Title      string        `json:"title"`
	Start      LocalDateTime `json:"start"`
	End        LocalDateTime `json:"end"`
	ResourceId int           `json:"resourceId,omitempty"`
}

type Timeline struct {
	Resources  []Resource `json:"resources"`
	Events     []Event    `json:"events"`
	Unassigned []Event    `json:"unassigned"`
}

// EventsFor returns the events placed on one room, in start order.
func (t Timeline) EventsFor(resourceId int) []Event {
	var out []Event
	for _, e := range t.Events {
		if e.ResourceId == resourceId {
			out = append(out, e)
		}
	}
	return out
}
