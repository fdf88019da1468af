package model

type Cinema struct {
	DTO
	Name        string   `json:"name"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Hotline     string   `json:"hotline"`
	Images      []string `json:"images"`
}

type CinemaInput struct {
	ID          int      `json:"id,omitempty" form:"id"`
	Name        string   `json:"name" form:"name" validate:"notblank"`
	Description string   `json:"description" form:"description" validate:"notblank"`
	City        string   `json:"city" form:"city" validate:"notblank"`
	Address     string   `json:"address" form:"address"`
	Latitude    float64  `json:"latitude" form:"latitude"`
	Longitude   float64  `json:"longitude" form:"longitude"`
	Hotline     string   `json:"hotline" form:"hotline"`
	Images      []string `json:"images" form:"-"`
}

// Location is a geocoded point.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
