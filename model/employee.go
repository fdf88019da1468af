package model

type Employee struct {
	DTO
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	PhoneNumber string     `json:"phoneNumber"`
	Birthday    CustomDate `json:"birthday"`
	Gender      bool       `json:"gender"`
	IsAdmin     bool       `json:"isAdmin"`
	Image       string     `json:"image"`
}

type CreateEmployeeInput struct {
	Name        string `json:"name" form:"name" validate:"notblank"`
	Address     string `json:"address" form:"address" validate:"notblank"`
	Email       string `json:"email" form:"email" validate:"notblank,email"`
	Username    string `json:"username" form:"username" validate:"notblank"`
	Password    string `json:"password" form:"password" validate:"notblank,min=8"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"notblank"`
	Birthday    string `json:"birthday" form:"birthday" validate:"notblank"`
	Gender      bool   `json:"gender" form:"gender"`
	IsAdmin     bool   `json:"isAdmin" form:"isAdmin"`
	Image       string `json:"image,omitempty" form:"-"`
}

type EditEmployeeInput struct {
	ID          int    `json:"id" form:"id"`
	Name        string `json:"name" form:"name" validate:"notblank"`
	Address     string `json:"address" form:"address" validate:"notblank"`
	Email       string `json:"email" form:"email" validate:"notblank,email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" validate:"notblank"`
	Birthday    string `json:"birthday" form:"birthday" validate:"notblank"`
	Gender      bool   `json:"gender" form:"gender"`
	Image       string `json:"image,omitempty" form:"-"`
}

type Customer struct {
	ID           int        `json:"id"`
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phoneNumber"`
	Address      string     `json:"address"`
	DateOfBirth  CustomDate `json:"dateOfBirth"`
}
