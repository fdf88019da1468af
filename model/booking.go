package model

type BookingStatus int

const (
	BookingPending   BookingStatus = 1
	BookingCancelled BookingStatus = 2
	BookingPaid      BookingStatus = 3
)

const PaymentDestinationVNPay = "VNPAY"

type Booking struct {
	ID           int           `json:"id"`
	BookingRefId string        `json:"bookingRefId"`
	CustomerName string        `json:"customerName"`
	PhoneNumber  string        `json:"phoneNumber"`
	ScheduleId   int           `json:"scheduleId"`
	TotalPrice   float64       `json:"totalPrice"`
	BookingDate  LocalDateTime `json:"bookingDate"`
	FilmName     string        `json:"filmName"`
	CinemaName   string        `json:"cinemaName"`
	UsageStatus  string        `json:"usageStatus"`
}

type Ticket struct {
	ID         int     `json:"id"`
	NumberSeat int     `json:"numberSeat"`
	SeatCode   string  `json:"seatCode"`
	TypeTicket int     `json:"typeTicket"`
	Price      float64 `json:"price"`
}

type BookingInformation struct {
	Booking
	BookingCurrency string        `json:"bookingCurrency"`
	BookingLanguage string        `json:"bookingLanguage"`
	StartTime       LocalDateTime `json:"startTime"`
	RoomName        string        `json:"roomName"`
	Image           string        `json:"image"`
	Tickets         []Ticket      `json:"tickets"`
}

type BookingStatusInput struct {
	ID            int           `json:"id"`
	BookingStatus BookingStatus `json:"bookingStatus"`
}
