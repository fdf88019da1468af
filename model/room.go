package model

type RoomStatus int

const (
	RoomActive      RoomStatus = 1
	RoomMaintenance RoomStatus = 2
	RoomClosed      RoomStatus = 3
)

func (s RoomStatus) String() string {
	switch s {
	case RoomActive:
		return "Active"
	case RoomMaintenance:
		return "Maintenance"
	case RoomClosed:
		return "Closed"
	}
	return "Unknown"
}

type Room struct {
	DTO
	Name         string     `json:"name"`
	NumberSeat   int        `json:"numberSeat"`
	Status       RoomStatus `json:"status"`
	CinemaId     int        `json:"cinemaId"`
	NumberRow    int        `json:"numberRow"`
	NumberColumn int        `json:"numberColumn"`
}

type RoomInput struct {
	ID           int        `json:"id,omitempty" form:"id"`
	Name         string     `json:"name" form:"name" validate:"notblank"`
	NumberSeat   int        `json:"numberSeat" form:"numberSeat" validate:"gte=0"`
	Status       RoomStatus `json:"status" form:"status" validate:"oneof=1 2 3"`
	CinemaId     int        `json:"cinemaId" form:"cinemaId" validate:"gt=0"`
	NumberRow    int        `json:"numberRow" form:"numberRow" validate:"gt=0"`
	NumberColumn int        `json:"numberColumn" form:"numberColumn" validate:"gt=0"`
}
